package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	SetSections("desugar")
	defer SetSections("desugar", "package")

	buf := &bytes.Buffer{}
	logger := slog.New(&filteringHandler{underlying: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})})

	logger.With("section", "desugar").Debug("kept")
	logger.With("section", "package").Debug("dropped")
	logger.With("section", "package").Warn("warnings always pass")
	logger.Info("inline section", "section", "desugar.loop")

	out := buf.String()
	assert.Contains(t, out, "kept")
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "warnings always pass")
	assert.Contains(t, out, "inline section")
}
