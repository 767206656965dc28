package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
)

// DefaultPath is where the visualizer expects its data.
const DefaultPath = "data/out.json"

// EncodeJSON writes chapters as a JSON array of arrays of word objects,
// indented with four spaces. Non-ASCII text is written as-is.
func EncodeJSON(w io.Writer, chapters [][]analytics.Record) error {
	if chapters == nil {
		chapters = [][]analytics.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(chapters)
}

// WriteJSON writes chapters to path, creating parent directories.
func WriteJSON(path string, chapters [][]analytics.Record) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := EncodeJSON(f, chapters); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
