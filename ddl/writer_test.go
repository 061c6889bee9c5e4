package ddl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestWriterAppend(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewWriter(&buf)

		assert.NoError(t, writer.Append([]string{"one", "two"}))
		assert.NoError(t, writer.Append([]string{"three"}))

		assert.Equal(t, "one\ntwo\nthree\n", buf.String())
		assert.Equal(t, 3, writer.Lines())
	})

	t.Run("NilDestination", func(t *testing.T) {
		writer := NewWriter(nil)
		err := writer.Append([]string{"x"})
		assert.True(t, errors.Is(err, ErrNilDestination))
	})
}

func TestWriterEcho(t *testing.T) {
	t.Run("CopiesLinesVerbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.sql")
		f, err := os.Create(path)
		assert.NoError(t, err)
		defer f.Close()

		var log bytes.Buffer
		writer := NewWriter(f)
		writer.SetEchoSink(&log)

		lines := []string{"create table work.t", "(", "  a num length=8", ");"}
		assert.NoError(t, writer.Append(lines))
		assert.NoError(t, writer.Echo())

		assert.Equal(t, "create table work.t\n(\n  a num length=8\n);\n", log.String())

		// the echo must not alter the written content
		written, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, log.String(), string(written))
	})

	t.Run("RestoresWritePosition", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out.sql"))
		assert.NoError(t, err)
		defer f.Close()

		var log bytes.Buffer
		writer := NewWriter(f)
		writer.SetEchoSink(&log)

		assert.NoError(t, writer.Append([]string{"first"}))
		assert.NoError(t, writer.Echo())
		assert.NoError(t, writer.Append([]string{"second"}))

		written, err := os.ReadFile(f.Name())
		assert.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(written))
	})

	t.Run("NoSinkIsNoOp", func(t *testing.T) {
		var buf bytes.Buffer
		writer := NewWriter(&buf)
		assert.NoError(t, writer.Append([]string{"x"}))
		assert.NoError(t, writer.Echo())
	})

	t.Run("UnseekableDestination", func(t *testing.T) {
		var buf, log bytes.Buffer
		writer := NewWriter(&buf)
		writer.SetEchoSink(&log)

		assert.NoError(t, writer.Append([]string{"x"}))
		err := writer.Echo()
		assert.True(t, errors.Is(err, ErrEchoUnsupported))
		// the primary output is untouched
		assert.Equal(t, "x\n", buf.String())
	})
}
