package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Render turns the generated declarations into formatted source.
// goimports runs over the rendered bytes so that type expressions from
// overrides referencing external packages pick up their imports.
func Render(f *jen.File, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering generated file: %w", err)
	}

	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated file: %w", err)
	}

	return out, nil
}

// WriteFile writes rendered content, creating the parent directory if
// it doesn't exist.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
