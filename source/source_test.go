package source_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltick/tick-ini/source"
)

func TestFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "source-*.ini")
	require.NoError(t, err)
	_, err = f.WriteString("[a]\nk=1\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rc, err := source.File(f.Name())
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "[a]\nk=1\n", string(data))
}
