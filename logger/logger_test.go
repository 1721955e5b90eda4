package logger

import (
	"strings"
	"testing"
)

func TestLoggerRecords(t *testing.T) {
	l := New()
	l.Log(Warning, "bad line %d", 7)
	l.Log(Error, "gave up")

	if l.Empty() {
		t.Fatalf("logger should not be empty")
	}
	msgs := l.Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Sev != Warning || msgs[0].Text != "bad line 7" {
		t.Errorf("first message: %+v", msgs[0])
	}

	l.Clear()
	if !l.Empty() {
		t.Fatalf("Clear left messages behind")
	}
}

func TestLoggerContext(t *testing.T) {
	l := New()
	prev := l.SetContext("loading caves.bdcff")
	if prev != "" {
		t.Fatalf("fresh logger has context %q", prev)
	}
	l.Log(Warning, "bad line")
	l.SetContext(prev)
	l.Log(Warning, "later")

	msgs := l.Messages()
	if msgs[0].Text != "loading caves.bdcff: bad line" {
		t.Errorf("context not applied: %q", msgs[0].Text)
	}
	if msgs[1].Text != "later" {
		t.Errorf("context not restored: %q", msgs[1].Text)
	}
}

func TestActiveStack(t *testing.T) {
	base := Active()

	l := Push()
	if Active() != l {
		t.Fatalf("pushed logger is not active")
	}
	Warningf("to the pushed logger")
	Pop()

	if Active() != base {
		t.Fatalf("Pop did not restore the previous logger")
	}
	if l.Empty() {
		t.Fatalf("helper did not reach the pushed logger")
	}
	if found := base.Messages(); len(found) != 0 && strings.Contains(found[len(found)-1].Text, "to the pushed logger") {
		t.Fatalf("message leaked to the base logger")
	}
}

func TestString(t *testing.T) {
	l := New()
	l.Log(Warning, "one")
	l.Log(Critical, "two")
	want := "warning: one\ncritical: two"
	if got := l.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
