package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a catalog file.
type document struct {
	Questions []Question `yaml:"questions"`
	Programs  []Program  `yaml:"programs"`
}

// Decode reads a YAML catalog. Unknown fields are rejected so typos in
// content files fail loudly instead of silently dropping a dependency.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decoding catalog: empty document")
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	for i := range doc.Questions {
		if doc.Questions[i].Kind == "" {
			doc.Questions[i].Kind = KindSingle
		}
	}
	return New(doc.Questions, doc.Programs), nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file %q not found", path)
		}
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode writes c as YAML in the format Decode accepts.
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := document{Questions: c.questions, Programs: c.programs}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
