package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// Format runs goimports over generated source. The filename is used only to
// resolve the package context of the file.
func Format(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, NewGenerationError("format", filename, "formatting generated source", err)
	}
	return formatted, nil
}

// Source renders the generator output and formats it.
func (g *JenniferGenerator) Source() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return nil, err
	}
	return Format(g.config.Target, buf.Bytes())
}

// WriteFile writes data to path atomically. The content is written to a
// temporary file in the target directory and renamed over path, so readers
// never observe a partially written file. Missing directories are created.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewIOError("write", path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return NewIOError("write", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return NewIOError("write", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return NewIOError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return NewIOError("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewIOError("write", path, err)
	}
	return nil
}
