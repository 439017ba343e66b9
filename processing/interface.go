package processing

import (
	"github.com/pdok/morton3d/morton"
)

// Record is one line of batch input together with its conversion result.
type Record struct {
	// Seq numbers the records of one source consecutively from 0
	Seq int
	// Line is the 1-based line number in the input
	Line  int
	Input string
	Coord morton.Coord
	Code  morton.Code
}

type Source interface {
	// ReadRecords sends all records and closes the channel.
	ReadRecords(chan<- Record)
}

type Target interface {
	// WriteRecords consumes the channel until it is closed, also after an error.
	WriteRecords(<-chan Record) error
}
