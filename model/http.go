package model

type DiagramRequestBody struct {
	Root        string `json:"root"`
	Formula     string `json:"formula"`
	Tuning      string `json:"tuning,omitempty"`
	MinimumFret int    `json:"minimum_fret,omitempty"`
}

type DiagramResponse struct {
	Frets     []int    `json:"frets"`
	Positions Fretting `json:"positions"`
	Diagram   string   `json:"diagram"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
