package valuereader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltick/tick-ini"
	"github.com/ltick/tick-ini/valuereader"
)

func parse(t *testing.T, text string) *ini.Config {
	t.Helper()
	cfg, err := ini.ParseString(text, ini.StopOnError)
	require.NoError(t, err)
	return cfg
}

func TestString(t *testing.T) {
	cfg := parse(t, "[a]\nname = hello\n")
	assert.Equal(t, "hello", valuereader.String(cfg, "a", "name", "fallback"))
	assert.Equal(t, "fallback", valuereader.String(cfg, "a", "missing", "fallback"))
	assert.Equal(t, "fallback", valuereader.String(cfg, "missing", "name", "fallback"))
}

func TestInt(t *testing.T) {
	cfg := parse(t, "[a]\ncount = 42\nbad = notanumber\n")

	n, err := valuereader.Int(cfg, "a", "count", 0)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = valuereader.Int(cfg, "a", "bad", 0)
	assert.Error(t, err)

	n, err = valuereader.Int(cfg, "a", "absent", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestBool(t *testing.T) {
	cfg := parse(t, "[a]\nx1 = yes\nx2 = OFF\nx3 = 1\nbad = maybe\n")

	for _, tc := range []struct {
		key  string
		want bool
	}{
		{"x1", true},
		{"x2", false},
		{"x3", true},
	} {
		b, err := valuereader.Bool(cfg, "a", tc.key, false)
		require.NoError(t, err)
		assert.Equal(t, tc.want, b)
	}

	_, err := valuereader.Bool(cfg, "a", "bad", false)
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	cfg := parse(t, "[a]\ntimeout = 5s\n")
	d, err := valuereader.Duration(cfg, "a", "timeout", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}
