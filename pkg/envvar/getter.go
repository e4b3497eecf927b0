package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Prefix is the prefix of every environment variable read by tastream.
const Prefix = "TASTREAM_"

func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	return str, true
}

func SetString(n string, v *string) bool {
	str, ok := String(n)
	if ok && str != "" {
		*v = str
		return true
	}

	return false
}

// Strings splits a comma separated variable, empty items are dropped.
func Strings(n string) ([]string, bool) {
	str, ok := os.LookupEnv(n)
	if !ok {
		return nil, false
	}

	var items []string
	for _, item := range strings.Split(str, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items, len(items) > 0
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}

func Bool(n string, args ...bool) (bool, bool) {
	defaultValue := false
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.ParseBool(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as bool, incorrect format", str)
		return defaultValue, false
	}

	return num, true
}
