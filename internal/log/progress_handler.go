package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fandomtools/ao3list/internal/config"
)

// levelSilent is above every slog level, so a handler configured with it
// drops all records.
const levelSilent = slog.Level(1000)

// ProgressHandler is a minimal slog.Handler for user-facing progress
// messages. It writes one plain line per record: the message followed by
// "key=value" attribute pairs, with no timestamp or level prefix.
//
// Design decision: We implement a custom handler rather than using
// slog.NewTextHandler because progress output is read by humans watching
// a scrape, not collected by log tooling. Timestamps and level tags are
// noise there, but keeping slog as the API lets the scraper stay
// agnostic about where its messages go.
type ProgressHandler struct {
	// output receives the rendered lines.
	output io.Writer

	// level is the minimum level this handler reports.
	level slog.Level

	// attrs holds attributes accumulated via WithAttrs.
	attrs []slog.Attr

	// mu serializes writes. Shared by pointer across WithAttrs copies so
	// all clones write atomically to the same destination.
	mu *sync.Mutex
}

// NewProgressHandler creates a ProgressHandler writing to output at the
// given minimum level.
func NewProgressHandler(output io.Writer, level slog.Level) *ProgressHandler {
	return &ProgressHandler{
		output: output,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ProgressHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders the record as a single plain line.
func (h *ProgressHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&sb, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, sb.String())
	return err
}

// WithAttrs returns a handler that includes the given attributes in every
// record.
func (h *ProgressHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns the handler unchanged. Progress output is flat, so
// group names are not rendered.
func (h *ProgressHandler) WithGroup(string) slog.Handler {
	return h
}

// writeAttr appends one " key=value" pair.
func writeAttr(sb *strings.Builder, attr slog.Attr) {
	fmt.Fprintf(sb, " %s=%v", attr.Key, attr.Value.Resolve().Any())
}

// NewLogger creates a progress logger for the given verbosity tier.
// Tier 0 suppresses everything, tier 1 reports which pages are fetched
// (Info), and tier 2 additionally reports counts and merge/filter
// statistics (Debug).
func NewLogger(verbosity int, output io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity <= config.VerbosityQuiet:
		level = levelSilent
	case verbosity == config.VerbosityNormal:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	return slog.New(NewProgressHandler(output, level))
}
