package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the compiled-in catalog when path is empty, otherwise the
// catalog described by the YAML file at path.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	store, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return store, nil
}

// Parse decodes a YAML catalog and validates it. Unknown fields are
// rejected so that typos fail at load instead of silently dropping data.
func Parse(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigError{Problems: []string{"empty document"}}
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return New(data)
}

// Export writes data as YAML, in the format Parse accepts.
func Export(w io.Writer, data Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
