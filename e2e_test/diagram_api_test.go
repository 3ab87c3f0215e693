//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretboard/cmd"
	"github.com/jsphweid/fretboard/diagram"
	"github.com/jsphweid/fretboard/model"
	"github.com/stretchr/testify/assert"
)

func createDiagramReqBody(body model.DiagramRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestEMajorDiagramE2E(t *testing.T) {
	body := createDiagramReqBody(model.DiagramRequestBody{Root: "E", Formula: "major"})
	req := httptest.NewRequest(http.MethodPost, "/diagram", body)
	w := httptest.NewRecorder()
	cmd.HandleDiagram(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var diagramResponse model.DiagramResponse
	err := json.Unmarshal(respBody, &diagramResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]int{0, 2, 2, 1, 0, 0}, diagramResponse.Frets)

	// the returned diagram header must round-trip to the same fretting
	parsed, err := diagram.ParseHeader(diagramResponse.Diagram)
	assert.NoError(err)
	assert.Equal(diagramResponse.Positions, parsed)
}

func TestEMajorBarreDiagramE2E(t *testing.T) {
	body := createDiagramReqBody(model.DiagramRequestBody{Root: "E", Formula: "major", MinimumFret: 7})
	req := httptest.NewRequest(http.MethodPost, "/diagram", body)
	w := httptest.NewRecorder()
	cmd.HandleDiagram(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var diagramResponse model.DiagramResponse
	err := json.Unmarshal(respBody, &diagramResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]int{7, 7, 9, 9, 9, 7}, diagramResponse.Frets)
}

func TestUnknownFormulaE2E(t *testing.T) {
	body := createDiagramReqBody(model.DiagramRequestBody{Root: "E", Formula: "mixolydian"})
	req := httptest.NewRequest(http.MethodPost, "/diagram", body)
	w := httptest.NewRecorder()
	cmd.HandleDiagram(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errorResponse model.ErrorResponse
	err := json.Unmarshal(respBody, &errorResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.Contains(errorResponse.Error, "mixolydian")
}

func TestFormulasE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/formulas", nil)
	w := httptest.NewRecorder()
	cmd.HandleFormulas(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var formulas map[string][]int
	err := json.Unmarshal(respBody, &formulas)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11, 12}, formulas["major scale"])
}
