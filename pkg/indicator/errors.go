package indicator

import (
	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned by the constructors when the configuration breaks a
// documented precondition, e.g., a period lower than 1 or a MACD fast period that is not
// shorter than the slow one. Use errors.Is to test for it.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidParameter(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

func checkPeriod(name string, period int) error {
	if period < 1 {
		return invalidParameter("%s period must be >= 1, got %d", name, period)
	}
	return nil
}
