package model

type ChordRequest struct {
	Root      string `json:"root" yaml:"root"`
	Quality   string `json:"quality" yaml:"quality"`
	Extension string `json:"extension" yaml:"extension"`
}

// ProgressionRequestBody is shared by POST /progression/{name} and the YAML
// input of `progression write`; Name is ignored over HTTP.
type ProgressionRequestBody struct {
	Name   string         `json:"name,omitempty" yaml:"name"`
	Chords []ChordRequest `json:"chords" yaml:"chords"`
}

type ProgressionResponse struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Chords int    `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
	Field string `json:"field,omitempty"`
	Token string `json:"token,omitempty"`
	Index *int   `json:"index,omitempty"`
}
