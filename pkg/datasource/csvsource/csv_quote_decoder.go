package csvsource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")

	// ErrUnknownFormat is returned when no decoder is registered for the format name.
	ErrUnknownFormat = errors.New("unknown csv format")
)

const (
	FormatBinance    = "binance"
	FormatMetaTrader = "metatrader"
)

// CSVQuoteDecoder is an extension point for CSVQuoteReader to support custom file formats.
type CSVQuoteDecoder func(record []string) (types.Quote, error)

// BinanceCSVQuoteDecoder decodes a CSV record from Binance or Bybit into a Quote:
//
//	unix-ms,open,high,low,close[,volume]
func BinanceCSVQuoteDecoder(record []string) (types.Quote, error) {
	var q types.Quote

	if len(record) < 5 {
		return q, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return q, errors.Wrapf(ErrInvalidTimeFormat, "%q", record[0])
	}

	q.Time = time.UnixMilli(msec).UTC()
	return decodeOHLCV(q, record[1:])
}

// MetaTraderCSVQuoteDecoder decodes a CSV record from MetaTrader into a Quote:
//
//	date;time;open;high;low;close[;volume]
func MetaTraderCSVQuoteDecoder(record []string) (types.Quote, error) {
	var q types.Quote

	if len(record) < 6 {
		return q, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return q, errors.Wrapf(ErrInvalidTimeFormat, "%q", tStr)
	}

	q.Time = t
	return decodeOHLCV(q, record[2:])
}

// decodeOHLCV parses open, high, low, close and the optional volume column.
func decodeOHLCV(q types.Quote, fields []string) (types.Quote, error) {
	var empty types.Quote

	prices := []*float64{&q.Open, &q.High, &q.Low, &q.Close}
	for i, p := range prices {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return empty, errors.Wrapf(ErrInvalidPriceFormat, "%q", fields[i])
		}
		*p = v
	}

	if len(fields) > 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return empty, errors.Wrapf(ErrInvalidVolumeFormat, "%q", fields[4])
		}
		q.Volume = v
	}

	if err := q.Validate(); err != nil {
		return empty, err
	}

	return q, nil
}
