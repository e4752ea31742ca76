package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattsolo1/grove-pagesort/pkg/models"
)

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// outputLabels prints one label per line, or a JSON array.
func outputLabels(w io.Writer, labels []string, format models.OutputFormat) error {
	if format == models.FormatJSON {
		return outputJSON(w, labels)
	}
	for _, label := range labels {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}
