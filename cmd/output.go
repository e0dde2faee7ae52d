package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// writeJSON writes v as indented JSON to w.
//
// When selector is not empty, it is a JSONPath expression (e.g. "$.records[*].commodity")
// evaluated on the JSON document, and only its result is written.
func writeJSON(w io.Writer, v any, selector string) error {
	if selector != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		v, err = jsonpath.Get(selector, doc)
		if err != nil {
			return fmt.Errorf("cannot select %q: %w", selector, err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
