package generate

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"entrygen"
	"entrygen/log"
)

//go:embed templates/entrypoints.gotmpl
var templatesFS embed.FS

// Writer renders the entry points for one manifest into a single
// generated file.
type Writer struct {
	manifest *Manifest
	dir      string
}

func NewWriter(manifest *Manifest, dir string) *Writer {
	return &Writer{
		manifest: manifest,
		dir:      dir,
	}
}

// Render synthesizes every method in the manifest and returns the
// formatted file contents.
func (w *Writer) Render() ([]byte, error) {
	descriptors, err := w.manifest.Descriptors()
	if err != nil {
		return nil, errors.Wrap(err, "resolving descriptors")
	}

	synth := NewSynthesizer(w.manifest.Contract)
	functions := make([]*entrygen.GeneratedFunction, 0, len(descriptors))
	for _, d := range descriptors {
		fn, err := synth.Synthesize(d)
		if err != nil {
			return nil, errors.Wrapf(err, "synthesizing %s", d.Name)
		}
		log.Printf("generate: synthesized %s (export %s)", fn.Name, fn.ExportName)
		functions = append(functions, fn)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.gotmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "entrypoints.gotmpl", map[string]interface{}{
		"Package":   w.manifest.Package,
		"Imports":   imports(functions),
		"Functions": functions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting source")
	}
	return out, nil
}

// Write renders the manifest and writes <contract>_entrypoints.go into
// the output directory.
func (w *Writer) Write() error {
	out, err := w.Render()
	if err != nil {
		return err
	}

	err = os.MkdirAll(w.dir, os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "creating directory")
	}

	filename := filepath.Join(w.dir, fmt.Sprintf("%s_entrypoints.go", strcase.ToSnake(w.manifest.Contract)))
	err = os.WriteFile(filename, out, 0o644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	log.Printf("generate: wrote %s (%d bytes)", filename, len(out))
	return nil
}

// imports lists the runtime packages the generated statements touch.
// env and runtime are always used; codec only when a decode or return
// emission names an encoding.
func imports(functions []*entrygen.GeneratedFunction) []string {
	needsCodec := false
	for _, fn := range functions {
		for _, stmt := range fn.Statements {
			if strings.Contains(stmt, "codec.") {
				needsCodec = true
			}
		}
	}

	out := []string{}
	if needsCodec {
		out = append(out, "entrygen/codec")
	}
	out = append(out, "entrygen/env", "entrygen/runtime")
	return out
}
