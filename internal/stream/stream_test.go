package stream

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderTokensAndOffsets(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("  [ 1.5 -2 ]\n")), false)
	require.False(t, r.Binary())
	require.Zero(t, r.Pos())

	tok, err := r.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "[", tok)
	assert.Equal(t, int64(3), r.Pos())

	tok, err = r.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "1.5", tok)

	tok, err = r.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "-2", tok)

	tok, err = r.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "]", tok)

	_, err = r.ReadToken()
	assert.Error(t, err)
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("ab")), true)

	b, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)
	assert.Zero(t, r.Pos())

	b, err = r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, int64(1), r.Pos())
}

func TestReadFullShortStream(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}), true)
	err := r.ReadFull(make([]byte, 4))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWriterOffsets(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	require.True(t, w.Binary())

	require.NoError(t, w.WriteString("FV"))
	assert.Equal(t, int64(2), w.Pos())
	assert.Equal(t, "FV", buf.String())
}

func TestOpenCreateGzipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("gzipped vector payload")

	for _, name := range []string{"plain.bin", "packed.bin.gz"} {
		path := filepath.Join(dir, name)

		wc, err := Create(path)
		require.NoError(t, err)
		_, err = wc.Write(payload)
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		rc, err := Open(path)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		assert.Equal(t, payload, got, "file %s", name)
	}
}
