package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct {
	err error
}

func (fw failingWriter) Write([]byte) (int, error) {
	return 0, fw.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestCombinedWriter_Write(t *testing.T) {
	first := &strings.Builder{}
	first.WriteString("already-here|")
	second := &strings.Builder{}

	cw := NewCombinedWriter(first, second)
	for _, msg := range []string{"level=info msg=one\n", "level=warn msg=two\n"} {
		n, err := cw.Write([]byte(msg))
		require.NoError(t, err)
		assert.Equal(t, len(msg), n)
	}

	assert.Equal(t, "already-here|level=info msg=one\nlevel=warn msg=two\n", first.String())
	assert.Equal(t, "level=info msg=one\nlevel=warn msg=two\n", second.String())
}

func TestCombinedWriter_KeepsWritingAfterFailure(t *testing.T) {
	diskFull := errors.New("disk full")
	sb := &strings.Builder{}

	cw := NewCombinedWriter(failingWriter{err: diskFull}, shortWriter{}, sb)
	n, err := cw.Write([]byte("a message"))

	assert.Equal(t, len("a message"), n)
	assert.ErrorIs(t, err, diskFull)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, "a message", sb.String())
}

func TestCombinedWriter_AllFail(t *testing.T) {
	cw := NewCombinedWriter(failingWriter{err: errors.New("a")}, failingWriter{err: errors.New("b")})
	n, err := cw.Write([]byte("x"))
	assert.Zero(t, n)
	assert.EqualError(t, err, "a; b")

	n, err = NewCombinedWriter().Write([]byte("x"))
	assert.Zero(t, n)
	assert.NoError(t, err)
}
