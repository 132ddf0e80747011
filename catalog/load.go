package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// File is the document type of catalog files.
type File struct {
	Variables []Variable `yaml:"variables"`
}

// Decode reads a catalog document. Unknown fields are errors.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, fmt.Errorf("catalog: %w", err)
	}
	seen := make(map[string]bool)
	for i, v := range f.Variables {
		if err := v.Check(); err != nil {
			return nil, fmt.Errorf("catalog: variable #%d: %w", i, err)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("catalog: %w: %q defined twice", ErrInvalidVariable, v.Name)
		}
		seen[v.Name] = true
	}
	return f, nil
}

// ReadFile reads a catalog file.
func ReadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Load reads a catalog file and pushes a new scope with its variables onto
// the catalog.
func (c *Catalog) Load(path string) (*Scope, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.PushFile(FileScope, f)
}

// PushFile pushes a new scope with the variables of a catalog document.
func (c *Catalog) PushFile(name string, f *File) (*Scope, error) {
	sc := NewScope(name, c.tos)
	for _, v := range f.Variables {
		if err := sc.Define(v); err != nil {
			return nil, err
		}
	}
	if c.tos == nil {
		c.base = sc
	}
	c.tos = sc
	tracer().P("scope", name).Infof("loaded %d variables", sc.table.Size())
	return sc, nil
}
