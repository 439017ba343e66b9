package processing

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdok/morton3d/morton"

	"github.com/muesli/reflow/truncate"
)

const maxLoggedInputWidth = 40

// Mode tells a LineSource what a line holds
type Mode int

const (
	// Coords lines hold x y z (separated by whitespace and/or commas)
	Coords Mode = iota
	// Codes lines hold a single code (decimal, 0x hex, 0b binary or 0o octal)
	Codes
)

// LineSource reads records from text, one per line.
// Empty lines and lines starting with # are ignored. Lines that cannot be parsed are logged and skipped.
type LineSource struct {
	Reader io.Reader
	Mode   Mode

	Skipped int
	Err     error
}

func (s *LineSource) ReadRecords(records chan<- Record) {
	defer close(records)
	scanner := bufio.NewScanner(s.Reader)
	seq := 0
	line := 0
	for scanner.Scan() {
		line++
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		record, err := s.parse(input)
		if err != nil {
			s.Skipped++
			log.Printf("skipping line %d %q: %s", line, truncate.StringWithTail(input, maxLoggedInputWidth, "..."), err)
			continue
		}
		record.Seq = seq
		record.Line = line
		records <- record
		seq++
	}
	s.Err = scanner.Err()
	if s.Skipped > 0 {
		log.Printf("    skipped lines: %d", s.Skipped)
	}
}

func (s *LineSource) parse(input string) (Record, error) {
	record := Record{Input: input}
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	switch s.Mode {
	case Codes:
		if len(fields) != 1 {
			return record, fmt.Errorf("expected 1 code, got %d fields", len(fields))
		}
		code, err := ParseCode(fields[0])
		if err != nil {
			return record, err
		}
		record.Code = code
	default:
		coord, err := ParseCoord(fields)
		if err != nil {
			return record, err
		}
		record.Coord = coord
	}
	return record, nil
}

// ParseCoord parses three unsigned 32-bit integers
func ParseCoord(fields []string) (morton.Coord, error) {
	var coord morton.Coord
	if len(fields) != len(coord) {
		return coord, fmt.Errorf("expected %d coordinates, got %d", len(coord), len(fields))
	}
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 0, 32)
		if err != nil {
			return coord, err
		}
		coord[i] = uint32(v)
	}
	return coord, nil
}

// ParseCode parses an unsigned 64-bit integer
func ParseCode(field string) (morton.Code, error) {
	return strconv.ParseUint(strings.TrimSpace(field), 0, 64)
}

// SliceSource sends records that are already in memory
type SliceSource []Record

func (s SliceSource) ReadRecords(records chan<- Record) {
	defer close(records)
	for i, record := range s {
		record.Seq = i
		records <- record
	}
}
