package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSinkJoinsValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf, Separator: ","}.Deliver([]string{"a", "b"}))
	assert.Equal(t, "a,b\n", buf.String())
}

func TestWriterSinkSkipsEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf, Separator: "\n"}.Deliver(nil))
	assert.Empty(t, buf.String())
}

func TestDeferredWaitsForFlush(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New("stdout", Options{Writer: &buf, Separator: "\n"})
	require.NoError(t, err)
	deferred, ok := sink.(*Deferred)
	require.True(t, ok)

	require.NoError(t, deferred.Deliver([]string{"x", "y"}))
	assert.Empty(t, buf.String())
	require.NoError(t, deferred.Flush())
	assert.Equal(t, "x\ny\n", buf.String())

	require.NoError(t, deferred.Flush())
	assert.Equal(t, "x\ny\n", buf.String(), "second flush is a no-op")
}

func TestTmuxBufferSinkUsesSeparator(t *testing.T) {
	prev := setBuffer
	var gotSocket, gotName, gotData string
	setBuffer = func(socket, name, data string) error {
		gotSocket, gotName, gotData = socket, name, data
		return nil
	}
	t.Cleanup(func() { setBuffer = prev })

	sink, err := New("tmux-buffer", Options{Socket: "/tmp/s", Buffer: "picks", Separator: " "})
	require.NoError(t, err)
	require.NoError(t, sink.Deliver([]string{"dev", "ops"}))
	assert.Equal(t, "/tmp/s", gotSocket)
	assert.Equal(t, "picks", gotName)
	assert.Equal(t, "dev ops", gotData)
}

func TestClipboardSinkWrapsErrors(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errors.New("no xclip") }
	t.Cleanup(func() { writeClipboard = prev })

	err := ClipboardSink{Separator: "\n"}.Deliver([]string{"a"})
	assert.Error(t, err)
}

func TestNewRejectsUnknownSink(t *testing.T) {
	_, err := New("printer", Options{})
	assert.ErrorIs(t, err, ErrUnknownSink)
}
