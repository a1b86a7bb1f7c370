// Package diag collects diagnostics and prints them as text or JSON lines.
package diag

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Severity ranks a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Reporter writes diagnostics as they are reported and counts errors.
type Reporter struct {
	w      io.Writer
	format string
	au     aurora.Aurora
	errors int
}

// NewReporter returns a reporter writing to w. format is "text" or "json";
// anything else falls back to text.
func NewReporter(w io.Writer, format string) *Reporter {
	if format != "json" {
		format = "text"
	}
	return &Reporter{
		w:      w,
		format: format,
		au:     aurora.NewAurora(false),
	}
}

// SetColor toggles ANSI colouring of the severity prefix in text mode.
func (r *Reporter) SetColor(enabled bool) {
	r.au = aurora.NewAurora(enabled)
}

// Errorf reports an error.
func (r *Reporter) Errorf(format string, args ...any) {
	r.report(Error, fmt.Sprintf(format, args...))
}

// Warnf reports a warning.
func (r *Reporter) Warnf(format string, args ...any) {
	r.report(Warning, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any error has been reported.
func (r *Reporter) HasErrors() bool {
	return r.errors > 0
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	return r.errors
}

func (r *Reporter) report(sev Severity, msg string) {
	if sev == Error {
		r.errors++
	}
	if r.w == nil {
		return
	}
	if r.format == "json" {
		_ = json.NewEncoder(r.w).Encode(Diagnostic{Severity: sev.String(), Message: msg})
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.prefix(sev), msg)
}

func (r *Reporter) prefix(sev Severity) aurora.Value {
	if sev == Warning {
		return r.au.Yellow(sev.String())
	}
	return r.au.Red(sev.String())
}
