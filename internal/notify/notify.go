// Package notify carries user-facing notices (the toasts of a storefront UI)
// from the core to whatever renders them.
package notify

import (
	"context"
	"io"
	"log"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(Notice)
}

// Discard drops every notice.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notice) {}

// Logger writes notices to a log.Logger.
type Logger struct {
	logger *log.Logger
}

func NewLogger(logger *log.Logger) *Logger {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Logger{logger: logger}
}

func (l *Logger) Notify(n Notice) {
	l.logger.Printf("notify: level=%s message=%q", n.Level, n.Message)
}

// Buffer collects notices until they are drained.
type Buffer struct {
	mu      sync.Mutex
	notices []Notice
}

func (b *Buffer) Notify(n Notice) {
	b.mu.Lock()
	b.notices = append(b.notices, n)
	b.mu.Unlock()
}

// Drain returns the collected notices and empties the buffer.
func (b *Buffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

// Multi fans a notice out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(n Notice) {
	for _, nt := range m {
		if nt != nil {
			nt.Notify(n)
		}
	}
}

func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func Info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }
func Error(msg string) Notice   { return Notice{Level: LevelError, Message: msg} }

type ctxKey struct{}

// NewContext attaches n to ctx so a single call can collect its own notices.
func NewContext(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, ctxKey{}, n)
}

// FromContext returns the notifier attached to ctx, or Discard.
func FromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(ctxKey{}).(Notifier); ok && n != nil {
		return n
	}
	return Discard
}

// Emit sends n to base and to the notifier attached to ctx, if any.
func Emit(ctx context.Context, base Notifier, n Notice) {
	if base != nil {
		base.Notify(n)
	}
	FromContext(ctx).Notify(n)
}
