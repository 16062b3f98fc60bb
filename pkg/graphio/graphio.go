package graphio

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/layout"
)

// Marshal converts a layout graph to indented JSON bytes.
func Marshal(g *layout.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a layout graph as JSON to an io.Writer.
func Write(g *layout.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding graph")
	}
	return nil
}

// WriteFile writes a layout graph to a JSON file created with 0644
// permissions.
func WriteFile(g *layout.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBadFormat, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON document from an io.Reader into a layout graph.
func Read(r io.Reader) (*layout.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadFormat, err, "decoding graph")
	}
	return ToGraph(doc)
}

// ReadFile reads a JSON file and returns the decoded layout graph.
func ReadFile(path string) (*layout.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadFormat, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
