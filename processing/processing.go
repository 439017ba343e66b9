// Package processing takes care of the logistics around reading records from a Source,
// converting them and writing them to a Target in their original order.
// Not the conversion itself: that is package morton.
package processing

import (
	"fmt"
	"log"
	"sync"

	"github.com/pdok/morton3d/morton"
)

// ConvertFunc fills in the missing half (code or coord) of a record
type ConvertFunc func(Record) Record

// Encoder returns a ConvertFunc that computes Code from Coord.
// Coordinates that do not fit in morton.AxisBits are logged, the code is the truncated one.
func Encoder(codec morton.Codec) ConvertFunc {
	return func(r Record) Record {
		if !r.Coord.InDomain() {
			log.Printf("line %d: %v does not fit in %d bits per axis, higher bits are dropped", r.Line, r.Coord, morton.AxisBits)
		}
		r.Code = codec.Encode(r.Coord)
		return r
	}
}

// Decoder returns a ConvertFunc that computes Coord from Code.
func Decoder(codec morton.Codec) ConvertFunc {
	return func(r Record) Record {
		r.Coord = codec.Decode(r.Code)
		return r
	}
}

// AxisDecoder returns a ConvertFunc that only decodes one axis of Code into Coord,
// the other two coordinates stay zero.
func AxisDecoder(codec morton.Codec, axis morton.Axis) (ConvertFunc, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("%w: %v", morton.ErrUnknownAxis, axis)
	}
	return func(r Record) Record {
		r.Coord = morton.Coord{}
		// axis is valid, so DecodeAxis cannot fail
		r.Coord[axis], _ = codec.DecodeAxis(r.Code, axis)
		return r
	}, nil
}

// convertRecords applies f to every incoming record
func convertRecords(recordsIn <-chan Record, recordsOut chan<- Record, f ConvertFunc) {
	for record := range recordsIn {
		recordsOut <- f(record)
	}
}

// reorderRecords passes records on sorted by Seq again, the workers may have shuffled them
func reorderRecords(recordsIn <-chan Record, recordsOut chan<- Record) {
	pending := make(map[int]Record)
	next := 0
	for record := range recordsIn {
		pending[record.Seq] = record
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			recordsOut <- r
			next++
		}
	}
	close(recordsOut)
}

// Process reads all records from source, converts them with f on the given number of goroutines
// and writes them to target in the order the source produced them.
// It returns the number of converted records and the error of the target, if any.
func Process(source Source, target Target, workers, bufferSize int, f ConvertFunc) (int, error) {
	workers = max(workers, 1)
	bufferSize = max(bufferSize, 0)
	recordsBefore := make(chan Record, bufferSize)
	recordsAfter := make(chan Record, bufferSize)
	recordsOrdered := make(chan Record, bufferSize)

	go source.ReadRecords(recordsBefore)

	workersWG := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		workersWG.Add(1)
		go func() {
			defer workersWG.Done()
			convertRecords(recordsBefore, recordsAfter, f)
		}()
	}
	go func() {
		workersWG.Wait()
		close(recordsAfter)
	}()

	go reorderRecords(recordsAfter, recordsOrdered)

	counted := make(chan Record, bufferSize)
	count := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for record := range recordsOrdered {
			count++
			counted <- record
		}
		close(counted)
	}()

	err := target.WriteRecords(counted)
	<-done

	log.Printf("    total records: %d", count)
	return count, err
}
