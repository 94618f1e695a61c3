// Package printer writes leveled, styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status messages to an output stream.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(icon string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon != "" {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes a plain line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

// Successf writes a line marked as a success.
func (p *Printer) Successf(format string, args ...any) {
	p.line("✓", styles.TextSuccessStyle, format, args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.IconNotifyInfo, styles.TextSecondaryStyle, format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.IconNotifyWarning, lipgloss.NewStyle().Foreground(styles.ColorWarning), format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.IconNotifyError, styles.TextErrorStyle, format, args...)
}
