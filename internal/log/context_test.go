package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, &slog.HandlerOptions{}),
	})

	ctx := WithAttrs(context.Background(), slog.String("item", "Frozen Onion"))
	ctx = WithAttrs(ctx, slog.Int("count", 3))

	logger.InfoContext(ctx, "readings retrieved")

	output := buff.String()

	for _, expected := range []string{`item="Frozen Onion"`, "count=3", `msg="readings retrieved"`} {
		if !strings.Contains(output, expected) {
			t.Errorf("output: expected to contain '%s', got '%s'", expected, output)
		}
	}
}

func TestWithAttrsDoesNotLeak(t *testing.T) {
	parent := WithAttrs(context.Background(), slog.String("a", "1"))

	_ = WithAttrs(parent, slog.String("b", "2"))

	if e, g := 1, len(Attrs(parent)); e != g {
		t.Errorf("len(Attrs(parent)): expected %d, got %d", e, g)
	}
}
