package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// SGR escape sequences.
const (
	sgrReset = "\033[0m"
	sgrBold  = "\033[1m"
	sgrRed   = "\033[31m"
	sgrBlue  = "\033[34m"
	sgrCyan  = "\033[36m"
	sgrDim   = "\033[90m"
)

// detailWidth is the column at which details are wrapped.
const detailWidth = 72

// Printer writes errors for a terminal or for a log collector.
type Printer struct {
	// Color enables ANSI escapes in text output.
	Color bool

	// JSON writes one object per error instead of text.
	JSON bool
}

// Fprint writes err to w. Errors without a code are printed with their
// message only.
func (p Printer) Fprint(w io.Writer, err error) error {
	je, ok := err.(*Error)
	if !ok {
		je = &Error{Message: err.Error()}
	}
	if p.JSON {
		return json.NewEncoder(w).Encode(je)
	}
	_, werr := io.WriteString(w, p.text(je))
	return werr
}

// Format renders e as plain multi-line text.
func (e *Error) Format() string {
	return Printer{}.text(e)
}

// MarshalJSON encodes the fields a reader needs to act on e.
func (e *Error) MarshalJSON() ([]byte, error) {
	type view struct {
		Code       string   `json:"code,omitempty"`
		Category   Category `json:"category,omitempty"`
		Message    string   `json:"message"`
		Detail     string   `json:"detail,omitempty"`
		Suggestion string   `json:"suggestion,omitempty"`
		DocURL     string   `json:"docUrl,omitempty"`
		Cause      string   `json:"cause,omitempty"`
	}
	v := view{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Wrapped != nil {
		v.Cause = e.Wrapped.Error()
	}
	return json.Marshal(v)
}

func (p Printer) paint(sgr, s string) string {
	if !p.Color {
		return s
	}
	return sgr + s + sgrReset
}

func (p Printer) text(e *Error) string {
	var b strings.Builder

	title := "ERROR"
	if e.Code != "" {
		title += " " + e.Code
	}
	fmt.Fprintf(&b, "\n%s %s\n\n", p.paint(sgrBold+sgrRed, title+":"), p.paint(sgrBold, e.Message))

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteByte('\n')
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s %s\n\n", p.paint(sgrDim, "Cause:"), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n\n", p.paint(sgrCyan, "Hint:"), e.Suggestion)
	}
	if e.Example != "" {
		fmt.Fprintf(&b, "  %s\n", p.paint(sgrCyan, "Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteByte('\n')
	}
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s %s\n", p.paint(sgrDim, "Learn more:"), p.paint(sgrBlue, e.DocURL))
	}
	return b.String()
}

// wrapText breaks text into lines of at most width columns. Words longer
// than width get a line of their own.
func wrapText(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
