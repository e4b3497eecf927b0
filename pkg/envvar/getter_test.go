package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("TASTREAM_TEST_STRING", "binance")

	v, ok := String("TASTREAM_TEST_STRING")
	assert.True(t, ok)
	assert.Equal(t, "binance", v)

	v, ok = String("TASTREAM_TEST_UNSET", "metatrader")
	assert.False(t, ok)
	assert.Equal(t, "metatrader", v)

	target := "old"
	assert.True(t, SetString("TASTREAM_TEST_STRING", &target))
	assert.Equal(t, "binance", target)
}

func TestStrings(t *testing.T) {
	t.Setenv("TASTREAM_TEST_PATHS", " a.csv, ,b.csv ")

	paths, ok := Strings("TASTREAM_TEST_PATHS")
	assert.True(t, ok)
	assert.Equal(t, []string{"a.csv", "b.csv"}, paths)

	t.Setenv("TASTREAM_TEST_PATHS", ",")
	_, ok = Strings("TASTREAM_TEST_PATHS")
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	t.Setenv("TASTREAM_TEST_BOOL", "true")

	var debug bool
	assert.True(t, SetBool("TASTREAM_TEST_BOOL", &debug))
	assert.True(t, debug)

	t.Setenv("TASTREAM_TEST_BOOL", "yes please")
	v, ok := Bool("TASTREAM_TEST_BOOL", true)
	assert.False(t, ok)
	assert.True(t, v, "the default value is returned on parse errors")
}
