package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrEnv     = "env"
	attrTool    = "tool"
)

// TracingHandler tags calculator log lines so that a fisher or senspec run
// can be found next to its span: every record carries the service and tool
// name, and records logged inside a calculation span also carry its IDs.
type TracingHandler struct {
	next slog.Handler
}

// NewTracingHandler wraps next. env is omitted when empty, as is tool for
// callers that are not one of the calculators.
func NewTracingHandler(next slog.Handler, service, env, tool string) *TracingHandler {
	base := []slog.Attr{slog.String(attrService, service)}

	if tool != "" {
		base = append(base, slog.String(attrTool, tool))
	}

	if env != "" {
		base = append(base, slog.String(attrEnv, env))
	}

	return &TracingHandler{next: next.WithAttrs(base)}
}

func (h *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle appends trace_id and span_id when ctx holds a valid span.
func (h *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := h.next.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("log record: %w", err)
	}

	return nil
}

func (h *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{next: h.next.WithAttrs(attrs)}
}

func (h *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{next: h.next.WithGroup(name)}
}
