// Package lutgen generates the Go source of the lookup tables used by package morton.
package lutgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/pdok/morton3d/bitshelp"
)

const (
	EncodeTableSize = 1 << 8
	DecodeTableSize = 1 << 9
	valuesPerLine   = 8
)

// Tables holds the three encode and three decode lookup tables.
// Encode entries are the interleaved (and per axis pre-shifted) 24-bit block of an 8-bit chunk.
// Decode entries are the 3 bits of one axis found in a 9-bit code chunk.
type Tables struct {
	EncodeX, EncodeY, EncodeZ [EncodeTableSize]uint64
	DecodeX, DecodeY, DecodeZ [DecodeTableSize]uint32
}

// Build computes all tables from the bit-by-bit functions in bitshelp.
func Build() Tables {
	var t Tables
	for v := 0; v < EncodeTableSize; v++ {
		spread := bitshelp.Spread3(uint32(v))
		t.EncodeX[v] = spread
		t.EncodeY[v] = spread << 1
		t.EncodeZ[v] = spread << 2
	}
	for v := 0; v < DecodeTableSize; v++ {
		chunk := uint64(v)
		t.DecodeX[v] = bitshelp.Compact3(chunk)
		t.DecodeY[v] = bitshelp.Compact3(chunk >> 1)
		t.DecodeZ[v] = bitshelp.Compact3(chunk >> 2)
	}
	return t
}

type table struct {
	Name    string
	Comment string
	Type    string
	Size    int
	Lines   []string
}

var source = template.Must(template.New("tables").Parse(`// Code generated by "morton3d tables"; DO NOT EDIT.

package {{ .Package }}
{{ range .Tables }}
// {{ .Name }} {{ .Comment }}
var {{ .Name }} = [{{ .Size }}]{{ .Type }}{
{{- range .Lines }}
	{{ . }},
{{- end }}
}
{{ end -}}
`))

// Render writes t as gofmt'ed Go source declaring unexported package-level arrays in package pkg.
func Render(w io.Writer, pkg string, t Tables) error {
	tables := []table{
		encodeTable("encodeX256", "maps an 8-bit chunk of x to its interleaved 24-bit block.", t.EncodeX),
		encodeTable("encodeY256", "maps an 8-bit chunk of y to its interleaved 24-bit block.", t.EncodeY),
		encodeTable("encodeZ256", "maps an 8-bit chunk of z to its interleaved 24-bit block.", t.EncodeZ),
		decodeTable("decodeX512", "maps a 9-bit code chunk to its 3 bits of x.", t.DecodeX),
		decodeTable("decodeY512", "maps a 9-bit code chunk to its 3 bits of y.", t.DecodeY),
		decodeTable("decodeZ512", "maps a 9-bit code chunk to its 3 bits of z.", t.DecodeZ),
	}
	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Package string
		Tables  []table
	}{pkg, tables})
	if err != nil {
		return fmt.Errorf("could not render lookup tables: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("rendered lookup tables are not valid Go: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}

func encodeTable(name, comment string, values [EncodeTableSize]uint64) table {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = fmt.Sprintf("0x%06x", v)
	}
	return table{Name: name, Comment: comment, Type: "uint64", Size: len(values), Lines: joinLines(formatted)}
}

func decodeTable(name, comment string, values [DecodeTableSize]uint32) table {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = fmt.Sprintf("0x%x", v)
	}
	return table{Name: name, Comment: comment, Type: "uint32", Size: len(values), Lines: joinLines(formatted)}
}

func joinLines(values []string) []string {
	lines := make([]string, 0, len(values)/valuesPerLine+1)
	for i := 0; i < len(values); i += valuesPerLine {
		lines = append(lines, strings.Join(values[i:min(i+valuesPerLine, len(values))], ", "))
	}
	return lines
}
