// Package format renders converted records for output.
package format

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pdok/morton3d/morton"
	"github.com/pdok/morton3d/processing"

	"github.com/fxamacker/cbor/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Direction says which half of a record is the result
type Direction int

const (
	// Encoded records have their Code as result
	Encoded Direction = iota
	// Decoded records have their Coord as result
	Decoded
)

// Formatter writes one record
type Formatter interface {
	Format(w io.Writer, r processing.Record) error
}

// Options tweak what a Formatter writes
type Options struct {
	Direction Direction
	// SingleAxis limits decoded output to Axis
	SingleAxis bool
	Axis       morton.Axis
}

// New returns the Formatter called name: dec, hex, bin, json or cbor
func New(name string, opts Options) (Formatter, error) {
	switch name {
	case "dec":
		return textFormatter{opts: opts, codeFmt: "%d"}, nil
	case "hex":
		return textFormatter{opts: opts, codeFmt: "0x%016x"}, nil
	case "bin":
		return textFormatter{opts: opts, codeFmt: "0b%063b"}, nil
	case "json":
		return jsonFormatter{opts: opts}, nil
	case "cbor":
		return cborFormatter{opts: opts}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// textFormatter writes the result only: a code, or x y z (or a single axis)
type textFormatter struct {
	opts    Options
	codeFmt string
}

func (f textFormatter) Format(w io.Writer, r processing.Record) error {
	var err error
	switch {
	case f.opts.Direction == Encoded:
		_, err = fmt.Fprintf(w, f.codeFmt+"\n", r.Code)
	case f.opts.SingleAxis:
		_, err = fmt.Fprintf(w, "%d\n", r.Coord[f.opts.Axis])
	default:
		_, err = fmt.Fprintf(w, "%d %d %d\n", r.Coord.X(), r.Coord.Y(), r.Coord.Z())
	}
	return err
}

func fields(opts Options, r processing.Record) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	if opts.Direction == Decoded && opts.SingleAxis {
		m.Set(opts.Axis.String(), r.Coord[opts.Axis])
	} else {
		m.Set("x", r.Coord.X())
		m.Set("y", r.Coord.Y())
		m.Set("z", r.Coord.Z())
	}
	m.Set("code", r.Code)
	return m
}

// jsonFormatter writes one JSON object per line with keys in x, y, z, code order
type jsonFormatter struct {
	opts Options
}

func (f jsonFormatter) Format(w io.Writer, r processing.Record) error {
	b, err := json.Marshal(fields(f.opts, r))
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// cborRecord is the CBOR representation of a record: an array [x, y, z, code]
type cborRecord struct {
	_    struct{} `cbor:",toarray"`
	X    uint32
	Y    uint32
	Z    uint32
	Code uint64
}

// cborFormatter writes a sequence of CBOR data items (RFC 8742), one per record.
// Single axis output is a map {axis: value, "code": code}.
type cborFormatter struct {
	opts Options
}

func (f cborFormatter) Format(w io.Writer, r processing.Record) error {
	var item any = cborRecord{X: r.Coord.X(), Y: r.Coord.Y(), Z: r.Coord.Z(), Code: r.Code}
	if f.opts.Direction == Decoded && f.opts.SingleAxis {
		item = map[string]uint64{
			f.opts.Axis.String(): uint64(r.Coord[f.opts.Axis]),
			"code":               r.Code,
		}
	}
	b, err := cbor.Marshal(item)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Target writes records to an io.Writer with a Formatter
type Target struct {
	Writer    io.Writer
	Formatter Formatter
}

func (t Target) WriteRecords(records <-chan processing.Record) error {
	bw := bufio.NewWriter(t.Writer)
	var err error
	for record := range records {
		if err != nil {
			continue
		}
		err = t.Formatter.Format(bw, record)
	}
	if err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}
	return bw.Flush()
}
