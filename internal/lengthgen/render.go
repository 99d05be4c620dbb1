// SPDX-License-Identifier: MIT
// Package: initwith/internal/lengthgen
//
// render.go — template rendering and file emission.

package lengthgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// Header marks generated files so tools and reviewers skip them.
const Header = "// Code generated by fixedgen. DO NOT EDIT."

var sourceTmpl = template.Must(template.New("source").Parse(`{{.Header}}

package {{.Package}}

// MaxLen is the largest array length in Array.
const MaxLen = {{.MaxLen}}

// Array is the set of array types with element type T and a length in
// 0..MaxLen. Named types whose underlying type is one of them are included.
type Array[T any] interface {
{{- range $i, $n := .Lengths}}
	{{if $i}}	{{end}}~[{{$n}}]T{{if lt $n $.MaxLen}} |{{end}}
{{- end}}
}
`))

var testTmpl = template.Must(template.New("test").Parse(`{{.Header}}

package {{.Package}}_test

import "testing"

// TestAllLengths checks invocation count and slot order for every length in Array.
func TestAllLengths(t *testing.T) {
	t.Parallel()
{{range .Lengths}}
	checkLength[[{{.}}]int](t, {{.}})
{{- end}}
}
`))

// view is the data handed to the templates.
type view struct {
	Header  string
	Package string
	MaxLen  int
	Lengths []int
}

// newView expands cfg into the template data: lengths 0..MaxLen inclusive.
func newView(cfg Config) view {
	lengths := make([]int, cfg.MaxLen+1)
	for i := range lengths {
		lengths[i] = i
	}

	return view{Header: Header, Package: cfg.Package, MaxLen: cfg.MaxLen, Lengths: lengths}
}

// Render produces the formatted source and test files for cfg.
// test is nil when cfg.TestOutput is empty.
func Render(cfg Config) (src, test []byte, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Render: %w", err)
	}
	v := newView(cfg)
	if src, err = execute(sourceTmpl, v); err != nil {
		return nil, nil, err
	}
	if cfg.TestOutput == "" {
		return src, nil, nil
	}
	if test, err = execute(testTmpl, v); err != nil {
		return nil, nil, err
	}

	return src, test, nil
}

// execute runs t over v and gofmts the result.
func execute(t *template.Template, v view) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", t.Name(), ErrRender, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", t.Name(), ErrRender, err)
	}

	return out, nil
}

// Write renders cfg and writes the outputs. Each file is written to a
// temporary sibling first and renamed into place, so a failed run never
// leaves a truncated file behind. It returns the paths written, in order.
func Write(cfg Config) ([]string, error) {
	src, test, err := Render(cfg)
	if err != nil {
		return nil, err
	}
	if err = writeAtomic(cfg.Output, src); err != nil {
		return nil, err
	}
	written := []string{cfg.Output}
	if test != nil {
		if err = writeAtomic(cfg.TestOutput, test); err != nil {
			return written, err
		}
		written = append(written, cfg.TestOutput)
	}

	return written, nil
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writeAtomic(%s): %w", path, err)
	}
	tmp := f.Name()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("writeAtomic(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writeAtomic(%s): %w", path, err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writeAtomic(%s): %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writeAtomic(%s): %w", path, err)
	}

	return nil
}
