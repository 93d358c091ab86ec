// Package confkit is a small toolkit for file-based configuration: path
// resolution relative to the main config file, section hydration from
// per-concern yaml files, and one-time .env loading.
package confkit

import (
	"os"
	"path/filepath"
)

// ResolvePath resolves a file path relative to a base directory. It expands
// environment variables first; absolute paths are returned as-is.
func ResolvePath(base, file string) string {
	file = os.ExpandEnv(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(base, file)
}

// Section represents a configuration section that can be loaded from a
// separate file. The generic type T is the configuration type for the
// section.
type Section[T any] struct {
	File  string `json:",optional"`
	Value *T     `json:"-"`
}

// Hydrate loads the file named in the File field through loader and stores
// the result in Value. A Section with an empty File is left untouched.
func (s *Section[T]) Hydrate(base string, loader func(string) (*T, error)) error {
	if s.File == "" {
		return nil
	}
	p := ResolvePath(base, s.File)
	v, err := loader(p)
	if err != nil {
		return err
	}
	s.File, s.Value = p, v
	return nil
}
