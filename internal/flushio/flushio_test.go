package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.writes++
	return cw.Buffer.Write(p)
}

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, discardWriteFlusher, NewWriteFlusher(io.Discard), "expected discard to be shared")

	var sb strings.Builder
	assert.IsType(t, nopFlusher{}, NewWriteFlusher(&sb), "expected buffers to need no flushing")

	bw := bufio.NewWriter(&sb)
	assert.Equal(t, WriteFlusher(bw), NewWriteFlusher(bw), "expected write flushers to pass through")

	var cw countingWriter
	wf := NewWriteFlusher(struct{ io.Writer }{&cw})
	io.WriteString(wf, "🙆")
	assert.Equal(t, 0, cw.writes, "expected write to be buffered")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "🙆", cw.String())
}

func TestWriteFlushers(t *testing.T) {
	assert.Nil(t, WriteFlushers())
	assert.Nil(t, WriteFlushers(nil, nil))

	var a, b strings.Builder
	one := NewWriteFlusher(&a)
	assert.Equal(t, one, WriteFlushers(nil, one), "expected a lone flusher to be returned as is")

	both := WriteFlushers(one, NewWriteFlusher(&b))
	_, err := io.WriteString(both, "321")
	require.NoError(t, err)
	require.NoError(t, both.Flush())
	assert.Equal(t, "321", a.String())
	assert.Equal(t, "321", b.String())

	var c strings.Builder
	all := WriteFlushers(both, NewWriteFlusher(&c))
	assert.Len(t, all, 3, "expected nested flushers to be flattened")
}
