package adapters

import "errors"

var (
	// ErrGlobalUndefined is returned when the vendor global is called before
	// the vendor script has defined it.
	ErrGlobalUndefined = errors.New("vendor global is not defined")

	// ErrScriptLoad is returned when the vendor script could not be fetched.
	ErrScriptLoad = errors.New("failed to load vendor script")
)

// Call represents a single invocation of the vendor global.
//
// Structured calls carry Payload. Positional calls carry Command, Subject
// and Properties.
type Call struct {
	Payload    map[string]any `json:"payload,omitempty"`
	Command    string         `json:"command,omitempty"`
	Subject    string         `json:"subject,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Structured reports whether the call used the single-object form.
func (c Call) Structured() bool {
	return c.Payload != nil
}
