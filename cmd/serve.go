package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretboard/constants"
	"github.com/jsphweid/fretboard/diagram"
	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/fretting"
	"github.com/jsphweid/fretboard/guitar"
	"github.com/jsphweid/fretboard/model"
	"github.com/jsphweid/fretboard/note"
	"github.com/jsphweid/fretboard/sequence"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves diagrams over HTTP",
	Long:  `Serves diagrams over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func solveDiagram(input model.DiagramRequestBody) (model.DiagramResponse, error) {
	root, err := note.Parse(input.Root)
	if err != nil {
		return model.DiagramResponse{}, err
	}
	f, ok := formula.ByName(input.Formula)
	if !ok {
		return model.DiagramResponse{}, fmt.Errorf("unknown formula: %v", input.Formula)
	}
	tuning := input.Tuning
	if tuning == "" {
		tuning = constants.GetDefaultTuning()
	}
	opens, err := note.ParseTuning(tuning)
	if err != nil {
		return model.DiagramResponse{}, err
	}

	target := sequence.Build(root, f)
	result := fretting.ForInstrument(guitar.MakeInstrument(opens), target, input.MinimumFret)
	return model.DiagramResponse{
		Frets:     result.Frets(),
		Positions: result,
		Diagram:   diagram.Render(result, input.MinimumFret),
	}, nil
}

func HandleDiagram(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.DiagramRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	if input.MinimumFret < 0 || input.MinimumFret > constants.FretCount {
		writeError(w, 400, fmt.Sprintf("minimum_fret must be between 0 and %v", constants.FretCount))
		return
	}

	res, err := solveDiagram(input)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	log.Printf("%v diagram %v %v fret>=%v\n", requestId, input.Root, input.Formula, input.MinimumFret)
	json.NewEncoder(w).Encode(res)
}

func HandleFormulas(w http.ResponseWriter, r *http.Request) {
	res := make(map[string][]int)
	for _, name := range formula.Names() {
		f, _ := formula.ByName(name)
		res[name] = f.Offsets
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/diagram", HandleDiagram).Methods("POST")
	router.HandleFunc("/formulas", HandleFormulas).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
