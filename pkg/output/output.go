// Package output writes the paths that survived filtering.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nethoundsh/findit/pkg/fileinfo"
	"github.com/nethoundsh/findit/pkg/list"
)

// JSONRecord is one NDJSON line per matched path.
type JSONRecord struct {
	Path string             `json:"path"`
	File *fileinfo.JSONMeta `json:"file,omitempty"`
}

// JSONSummary counts the paths discovered and matched under Root.
type JSONSummary struct {
	Root       string `json:"root"`
	Discovered int    `json:"discovered"`
	Matched    int    `json:"matched"`
}

// JSONSummaryRecord is the final NDJSON line.
type JSONSummaryRecord struct {
	Summary JSONSummary `json:"summary"`
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintln(ew.w, a...)
	}
}

// PrintPaths writes one path per line, in list order.
func PrintPaths(w io.Writer, paths *list.List[string]) error {
	ew := &errWriter{w: w}
	paths.Each(func(p string) { ew.println(p) })
	return ew.err
}

// PrintJSON emits a single NDJSON line for one path. meta may be nil when the
// path could not be inspected.
func PrintJSON(w io.Writer, path string, meta *fileinfo.Meta) error {
	b, err := json.Marshal(JSONRecord{Path: path, File: fileinfo.ToJSON(meta)})
	if err != nil {
		return fmt.Errorf("marshaling JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// PrintJSONPaths emits one NDJSON record per path, looking up metadata as it
// goes. Paths that vanished since filtering are still printed, without metadata.
func PrintJSONPaths(w io.Writer, paths *list.List[string]) error {
	for p := range paths.All() {
		meta, _ := fileinfo.Lookup(p)
		if err := PrintJSON(w, p, meta); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSONSummary writes the summary line that ends JSON output.
func PrintJSONSummary(w io.Writer, root string, discovered, matched int) error {
	rec := JSONSummaryRecord{
		Summary: JSONSummary{
			Root:       root,
			Discovered: discovered,
			Matched:    matched,
		},
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling JSON summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
