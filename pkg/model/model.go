package model

// Report holds everything one pipeline run produced.
type Report struct {
	Original   string `json:"original" yaml:"original"`
	Language   string `json:"language" yaml:"language"`
	Translated bool   `json:"translated" yaml:"translated"`
	Chinese    string `json:"chinese" yaml:"chinese"`
	Analysis   string `json:"analysis" yaml:"analysis"`
	Document   string `json:"document" yaml:"document"`
}

// Sections is a best-effort split of an analysis into its five parts.
// Complete is false when one or more headers were not found; Raw always
// carries the untouched analysis.
type Sections struct {
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Modules     []string `json:"modules,omitempty" yaml:"modules,omitempty"`
	Causes      []string `json:"causes,omitempty" yaml:"causes,omitempty"`
	FormalReply string   `json:"formal_reply,omitempty" yaml:"formal_reply,omitempty"`
	CasualReply string   `json:"casual_reply,omitempty" yaml:"casual_reply,omitempty"`
	Complete    bool     `json:"complete" yaml:"complete"`
	Raw         string   `json:"-" yaml:"-"`
}
