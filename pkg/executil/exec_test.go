package executil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	e := &RealExecutor{}

	out, err := e.Run(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))

	_, err = e.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec sh")
}

func TestRealExecutor_Start_missing_binary(t *testing.T) {
	e := &RealExecutor{}
	err := e.Start(context.Background(), "fscs-definitely-not-a-binary")
	require.Error(t, err)
}

func TestRecordingExecutor(t *testing.T) {
	e := &RecordingExecutor{
		Outputs: map[string][]byte{"echo": []byte("hi")},
		Errors:  map[string]error{"xdg-open": errors.New("no display")},
	}

	out, err := e.Run(context.Background(), "echo", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(out))

	err = e.Start(context.Background(), "xdg-open", "https://example.com")
	require.Error(t, err)

	assert.Equal(t, []RecordedCommand{
		{Cmd: "echo", Args: []string{"hi"}},
		{Cmd: "xdg-open", Args: []string{"https://example.com"}, Detached: true},
	}, e.Recorded())

	e.Reset()
	assert.Empty(t, e.Recorded())
}
