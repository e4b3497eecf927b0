package csvsource

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/types"
)

// ValueWriter writes timestamped indicator values as csv rows:
//
//	time,<column>,<column>...
//
// The time is written in unix milliseconds, the same way the binance quote files store it.
type ValueWriter struct {
	w       *csv.Writer
	columns int
	record  []string
}

// NewValueWriter writes the header row and returns the writer.
func NewValueWriter(w io.Writer, columns []string) (*ValueWriter, error) {
	cw := csv.NewWriter(w)

	header := append([]string{"time"}, columns...)
	if err := cw.Write(header); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}

	return &ValueWriter{
		w:       cw,
		columns: len(columns),
		record:  make([]string, len(columns)+1),
	}, nil
}

func (w *ValueWriter) Write(t time.Time, values []float64) error {
	if len(values) != w.columns {
		return errors.Errorf("expecting %d values, given %d", w.columns, len(values))
	}

	w.record[0] = strconv.FormatInt(t.UnixMilli(), 10)
	for i, v := range values {
		w.record[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return errors.Wrap(w.w.Write(w.record), "writing csv record")
}

// Flush writes the buffered rows and reports the first write error.
func (w *ValueWriter) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

// WriteQuotes writes quotes into a binance formatted csv file, the parent directories are created when missing.
func WriteQuotes(path string, quotes []types.Quote) (err error) {
	if len(quotes) == 0 {
		return errors.New("no quotes to write")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	w := csv.NewWriter(file)
	for _, q := range quotes {
		row := []string{
			strconv.FormatInt(q.Time.UnixMilli(), 10),
			strconv.FormatFloat(q.Open, 'f', -1, 64),
			strconv.FormatFloat(q.High, 'f', -1, 64),
			strconv.FormatFloat(q.Low, 'f', -1, 64),
			strconv.FormatFloat(q.Close, 'f', -1, 64),
			strconv.FormatFloat(q.Volume, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "writing record to file")
		}
	}

	w.Flush()
	return w.Error()
}
