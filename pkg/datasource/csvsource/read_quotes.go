package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/tastream/pkg/types"
)

var log = logrus.WithField("component", "csvsource")

// ReadQuotesFromCSV reads all the .csv files in a given directory or a single file into a slice of Quotes.
// Wraps a default CSVQuoteReader with Binance decoder for convenience.
// For finer grained memory management use WalkQuotesFromCSV.
func ReadQuotesFromCSV(path string) ([]types.Quote, error) {
	return ReadQuotesFromCSVWithDecoder(path, NewBinanceCSVQuoteReader)
}

// ReadQuotesFromCSVWithDecoder permits using a custom CSVQuoteReader.
func ReadQuotesFromCSVWithDecoder(path string, maker MakeCSVQuoteReader) ([]types.Quote, error) {
	var quotes []types.Quote

	err := WalkQuotesFromCSV(path, maker, func(q types.Quote) error {
		quotes = append(quotes, q)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// WalkQuotesFromCSV streams the quotes of the .csv files under path into f, file by file in lexical order.
func WalkQuotesFromCSV(path string, maker MakeCSVQuoteReader, f func(q types.Quote) error) error {
	return filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()

		log.Debugf("reading quotes from %s", path)

		reader := maker(csv.NewReader(file))
		if err := reader.Each(f); err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		return nil
	})
}
