// Package sink renders evaluation results for the user: the bare total or
// error message as text, or a structured report as JSON or YAML.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/treeweight/internal/engine"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// Writer writes results to an io.Writer in one format.
type Writer struct {
	format Format
	out    io.Writer
}

// New returns a Writer for format.
func New(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// report is the structured form of one result.
type report struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	Total        *int64  `json:"total,omitempty" yaml:"total,omitempty"`
	Nodes        int     `json:"nodes" yaml:"nodes"`
	Depth        int     `json:"depth" yaml:"depth"`
	Unreachable  int     `json:"unreachable" yaml:"unreachable"`
	Disconnected []int64 `json:"disconnected,omitempty" yaml:"disconnected,omitempty"`
	Error        string  `json:"error,omitempty" yaml:"error,omitempty"`
	Detail       string  `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func toReport(r *engine.Result) report {
	rep := report{
		Name:        r.Name,
		Nodes:       r.Nodes,
		Depth:       r.Depth,
		Unreachable: r.Unreachable,
	}
	if r.Failed() {
		rep.Error = engine.Message(r.Err)
		rep.Detail = r.Err.Error()
		return rep
	}
	total := r.Total
	rep.Total = &total
	if r.Report != nil {
		rep.Disconnected = r.Report.Disconnected
	}
	return rep
}

// Write renders results. A single result is written as one value, several
// as a list.
func (w *Writer) Write(results []*engine.Result) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(w.payload(results))
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(w.payload(results)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return w.writeText(results)
	}
}

func (w *Writer) payload(results []*engine.Result) any {
	reports := make([]report, 0, len(results))
	for _, r := range results {
		reports = append(reports, toReport(r))
	}
	if len(reports) == 1 {
		return reports[0]
	}
	return reports
}

func (w *Writer) writeText(results []*engine.Result) error {
	for _, r := range results {
		line := Line(r)
		if len(results) > 1 {
			line = r.Name + ": " + line
		}
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Line is the plain-text form of a result: the total, or the message for
// its error.
func Line(r *engine.Result) string {
	if r.Failed() {
		return engine.Message(r.Err)
	}
	return strconv.FormatInt(r.Total, 10)
}
