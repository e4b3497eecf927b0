package csvsource

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/types"
)

var _ QuoteReader = (*CSVQuoteReader)(nil)

// QuoteReader is an interface for reading quotes one by one.
type QuoteReader interface {
	Read() (types.Quote, error)
	ReadAll() ([]types.Quote, error)
}

// CSVQuoteReader is a QuoteReader that reads from a CSV file.
type CSVQuoteReader struct {
	csv     *csv.Reader
	decoder CSVQuoteDecoder

	// line is the number of the last record read, used in the error messages
	line int
}

// MakeCSVQuoteReader is a factory method type that creates a new CSVQuoteReader.
type MakeCSVQuoteReader func(csv *csv.Reader) *CSVQuoteReader

// NewCSVQuoteReader creates a new CSVQuoteReader with the default Binance decoder.
func NewCSVQuoteReader(csv *csv.Reader) *CSVQuoteReader {
	return NewCSVQuoteReaderWithDecoder(csv, BinanceCSVQuoteDecoder)
}

// NewBinanceCSVQuoteReader creates a new CSVQuoteReader for Binance CSV files.
func NewBinanceCSVQuoteReader(csv *csv.Reader) *CSVQuoteReader {
	return NewCSVQuoteReaderWithDecoder(csv, BinanceCSVQuoteDecoder)
}

// NewMetaTraderCSVQuoteReader creates a new CSVQuoteReader for MetaTrader CSV files.
func NewMetaTraderCSVQuoteReader(csv *csv.Reader) *CSVQuoteReader {
	csv.Comma = ';'
	return NewCSVQuoteReaderWithDecoder(csv, MetaTraderCSVQuoteDecoder)
}

// NewCSVQuoteReaderWithDecoder creates a new CSVQuoteReader with the given decoder.
func NewCSVQuoteReaderWithDecoder(csv *csv.Reader, decoder CSVQuoteDecoder) *CSVQuoteReader {
	// volume is optional, the records may have different lengths
	csv.FieldsPerRecord = -1
	return &CSVQuoteReader{
		csv:     csv,
		decoder: decoder,
	}
}

// ReaderMakerByFormat returns the reader factory of the format name, an empty name selects Binance.
func ReaderMakerByFormat(format string) (MakeCSVQuoteReader, error) {
	switch strings.ToLower(format) {
	case "", FormatBinance, "bybit":
		return NewBinanceCSVQuoteReader, nil
	case FormatMetaTrader, "mt4", "mt5":
		return NewMetaTraderCSVQuoteReader, nil
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Read reads the next Quote from the underlying CSV data.
func (r *CSVQuoteReader) Read() (types.Quote, error) {
	var q types.Quote

	rec, err := r.csv.Read()
	if err != nil {
		return q, err
	}
	r.line++

	q, err = r.decoder(rec)
	if err != nil {
		return q, errors.Wrapf(err, "record %d", r.line)
	}

	return q, nil
}

// ReadAll reads all the Quotes from the underlying CSV data.
func (r *CSVQuoteReader) ReadAll() ([]types.Quote, error) {
	var qs []types.Quote
	err := r.Each(func(q types.Quote) error {
		qs = append(qs, q)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return qs, nil
}

// Each calls f with every remaining quote without keeping them in memory.
func (r *CSVQuoteReader) Each(f func(q types.Quote) error) error {
	for {
		q, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := f(q); err != nil {
			return err
		}
	}
}
