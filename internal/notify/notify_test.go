package notify

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

func TestBufferDrain(t *testing.T) {
	var b Buffer
	b.Notify(Success("added"))
	b.Notify(Info("removed"))

	got := b.Drain()
	if len(got) != 2 || got[0].Level != LevelSuccess || got[1].Message != "removed" {
		t.Fatalf("unexpected notices %+v", got)
	}
	if again := b.Drain(); len(again) != 0 {
		t.Fatalf("expected empty buffer after drain, got %+v", again)
	}
}

func TestMultiAndLogger(t *testing.T) {
	var out bytes.Buffer
	var b Buffer
	m := Multi{NewLogger(log.New(&out, "", 0)), &b, nil}

	m.Notify(Error("boom"))

	if !strings.Contains(out.String(), `level=error message="boom"`) {
		t.Fatalf("unexpected log output %q", out.String())
	}
	if got := b.Drain(); len(got) != 1 || got[0].Level != LevelError {
		t.Fatalf("unexpected notices %+v", got)
	}
}

func TestEmitReachesContextNotifier(t *testing.T) {
	var base, scoped Buffer
	ctx := NewContext(context.Background(), &scoped)

	Emit(ctx, &base, Info("one"))
	Emit(context.Background(), &base, Info("two"))

	if got := base.Drain(); len(got) != 2 {
		t.Fatalf("expected base to see both notices, got %+v", got)
	}
	if got := scoped.Drain(); len(got) != 1 || got[0].Message != "one" {
		t.Fatalf("expected scoped notifier to see only its call, got %+v", got)
	}
	if FromContext(context.Background()) != Discard {
		t.Fatalf("expected Discard without attached notifier")
	}
}
