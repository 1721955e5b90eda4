// Package logger collects severity-leveled diagnostics while a file is
// loaded or converted, so a caller can show every problem at once instead of
// stopping at the first bad line.
//
// Package-level helpers report to the most recently pushed Logger. The usual
// shape is to push one around a load, check Empty afterwards, and pop it:
//
//	l := logger.Push()
//	defer logger.Pop()
//	set, err := bdcff.Decode(data)
//	if !l.Empty() { ... }
package logger

import (
	"fmt"
	"strings"
	"sync"
)

type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Critical
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	case Error:
		return "error"
	}
	return "unknown"
}

// Message is one recorded diagnostic.
type Message struct {
	Sev  Severity
	Text string
}

// Logger records messages in order. A context string, when set, prefixes
// every message recorded while it is active.
type Logger struct {
	mu       sync.Mutex
	context  string
	messages []Message
}

// New returns a standalone logger that is not on the active stack.
func New() *Logger {
	return &Logger{}
}

// Log records one message at the given severity.
func (l *Logger) Log(sev Severity, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.context != "" {
		text = l.context + ": " + text
	}
	l.messages = append(l.messages, Message{Sev: sev, Text: text})
}

// SetContext sets the message prefix and returns the previous one so a
// caller can restore it when leaving a load phase.
func (l *Logger) SetContext(context string) (prev string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev = l.context
	l.context = context
	return prev
}

// Empty reports whether nothing has been recorded since the last Clear.
func (l *Logger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages) == 0
}

// Messages returns a copy of the recorded messages.
func (l *Logger) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Clear drops all recorded messages.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}

// String joins every message, one per line, severity first.
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var b strings.Builder
	for i, m := range l.messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", m.Sev, m.Text)
	}
	return b.String()
}

var (
	stackMu sync.Mutex
	stack   = []*Logger{New()}
)

// Push makes a new logger the active one and returns it.
func Push() *Logger {
	l := New()
	stackMu.Lock()
	defer stackMu.Unlock()
	stack = append(stack, l)
	return l
}

// Pop removes the most recently pushed logger. The bottom logger created at
// init stays; it is the fallback when nothing else is active.
func Pop() {
	stackMu.Lock()
	defer stackMu.Unlock()
	if len(stack) > 1 {
		stack = stack[:len(stack)-1]
	}
}

// Active returns the logger package-level helpers report to.
func Active() *Logger {
	stackMu.Lock()
	defer stackMu.Unlock()
	return stack[len(stack)-1]
}

func Debugf(format string, args ...any)   { Active().Log(Debug, format, args...) }
func Infof(format string, args ...any)    { Active().Log(Info, format, args...) }
func Warningf(format string, args ...any) { Active().Log(Warning, format, args...) }
func Criticalf(format string, args ...any) {
	Active().Log(Critical, format, args...)
}
func Errorf(format string, args ...any) { Active().Log(Error, format, args...) }
