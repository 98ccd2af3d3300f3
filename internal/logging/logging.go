// Package logging builds the structured logger used by the command line
// tool. Records go to a console writer and are also retained in a bounded
// in-memory Buffer so a run can replay its log afterwards.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Buffer keeps the most recent formatted log lines.
type Buffer struct {
	mu    sync.Mutex
	limit int
	lines []string
}

// NewBuffer creates a buffer holding at most limit lines. A limit of zero
// keeps nothing.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

// Write stores each complete line of p.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.limit <= 0 {
		return len(p), nil
	}
	for line := range strings.SplitSeq(strings.TrimRight(string(p), "\n"), "\n") {
		b.lines = append(b.lines, line)
	}
	if over := len(b.lines) - b.limit; over > 0 {
		b.lines = append(b.lines[:0:0], b.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// Len returns the number of retained lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// WriteTo writes the retained lines to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range b.Lines() {
		m, err := io.WriteString(w, line+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Options selects where and how much is logged.
type Options struct {
	// Console receives records at Level and above. Nil disables it.
	Console io.Writer
	Level   slog.Level
	// Buffer receives every record down to debug. Nil disables it.
	Buffer *Buffer
}

// New builds a logger from opts.
func New(opts Options) *slog.Logger {
	var handlers []slog.Handler
	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{Level: opts.Level}))
	}
	if opts.Buffer != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler)
	case 1:
		return slog.New(handlers[0])
	}
	return slog.New(tee(handlers))
}

// tee fans each record out to every handler that accepts its level.
type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(tee, len(t))
	for i, h := range t {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (t tee) WithGroup(name string) slog.Handler {
	next := make(tee, len(t))
	for i, h := range t {
		next[i] = h.WithGroup(name)
	}
	return next
}
