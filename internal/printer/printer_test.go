package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Levels(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("plain %d", 1)
	p.Successf("content is valid")
	p.Errorf("%d error(s) found", 2)

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "plain 1\n")
	assert.Contains(t, out, "✓ content is valid\n")
	assert.Contains(t, out, "2 error(s) found\n")
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), New(&buf))

	Ctx(ctx).Printf("hello")
	assert.Equal(t, "hello\n", buf.String())

	assert.NotNil(t, Ctx(context.Background()))
}
