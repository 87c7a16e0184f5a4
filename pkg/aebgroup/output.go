package aebgroup

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText renders bursts as one key line each, members indented
// beneath it.
func WriteText(w io.Writer, bursts []Burst) error {
	for _, b := range bursts {
		if _, err := fmt.Fprintln(w, b.Key); err != nil {
			return err
		}
		for _, i := range b.Images {
			if _, err := fmt.Fprintf(w, "    %s\n", i.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON renders bursts as a key -> path-list object. Keys are
// ISO-8601 timestamps, so encoding/json's sorted map output keeps the
// bursts in chronological order.
func WriteJSON(w io.Writer, bursts []Burst) error {
	out := make(map[string][]string, len(bursts))
	for _, b := range bursts {
		paths := make([]string, 0, len(b.Images))
		for _, i := range b.Images {
			paths = append(paths, i.Path)
		}
		out[b.Key] = paths
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(out)
}
