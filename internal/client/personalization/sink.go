package personalization

import (
	"fmt"
	"io"

	"github.com/daybookapp/daybook/internal/client/models"
)

// Sink receives resolved style variables. Implementations must treat
// SetVariable as idempotent, last-write-wins per name.
type Sink interface {
	SetVariable(name, value string)
}

// MapSink collects variables into a map. It is the in-process document scope
// for the terminal client and doubles as a test double. Not safe for
// concurrent use.
type MapSink struct {
	vars  map[string]string
	calls int
}

// NewMapSink returns an empty MapSink.
func NewMapSink() *MapSink {
	return &MapSink{vars: map[string]string{}}
}

// SetVariable stores the value under name.
func (s *MapSink) SetVariable(name, value string) {
	s.vars[name] = value
	s.calls++
}

// Get returns the current value for name ("" when unset).
func (s *MapSink) Get(name string) string {
	return s.vars[name]
}

// Calls returns how many SetVariable calls the sink has seen.
func (s *MapSink) Calls() int {
	return s.calls
}

// WriteCSS renders the resolved variables for cfg as a :root custom-property
// block, for exporting a stylesheet that a web view can link.
func WriteCSS(w io.Writer, cfg models.Settings) error {
	if _, err := fmt.Fprintln(w, ":root {"); err != nil {
		return err
	}
	for _, v := range Resolve(cfg) {
		if _, err := fmt.Fprintf(w, "  --%s: %s;\n", v.Name, v.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
