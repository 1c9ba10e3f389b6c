package stats

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVSink writes one header line and one row per periodic dump to a CSV
// file, buffering rows and flushing in batches: an xid-generated
// fallback name when none is configured, and an atexit-registered final
// flush so a snapshot isn't lost if the process exits uncleanly mid-run.
type CSVSink struct {
	path string
	file *os.File

	rows       [][2]uint64
	bufferSize int
}

// NewCSVSink creates a sink writing to path. If path is empty, a unique
// name is generated when Open is called.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path, bufferSize: 1000}
}

// Open creates the backing file and registers an atexit flush-and-close.
func (s *CSVSink) Open() error {
	if s.path == "" {
		s.path = "corestep_stats_" + xid.New().String() + ".csv"
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("stats: creating CSV sink %q: %w", s.path, err)
	}
	s.file = file

	atexit.Register(func() {
		_ = s.Flush()
		_ = s.file.Close()
	})

	return nil
}

// DumpHeader writes the column header line.
func (s *CSVSink) DumpHeader() error {
	_, err := fmt.Fprintln(s.file, "cycle,total_user_insns_committed")
	return err
}

// DumpPeriodic buffers one row, flushing once the buffer is full.
func (s *CSVSink) DumpPeriodic(cycle, totalUserInsnsCommitted uint64) error {
	s.rows = append(s.rows, [2]uint64{cycle, totalUserInsnsCommitted})

	if len(s.rows) >= s.bufferSize {
		return s.Flush()
	}

	return nil
}

// Flush writes every buffered row to the file.
func (s *CSVSink) Flush() error {
	for _, row := range s.rows {
		if _, err := fmt.Fprintf(s.file, "%d,%d\n", row[0], row[1]); err != nil {
			return err
		}
	}
	s.rows = nil
	return nil
}
