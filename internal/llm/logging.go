package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Event records one LLM request for diagnostics.
type Event struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives LLM request events.
type EventSink interface {
	RecordLLMRequest(ctx context.Context, ev Event) error
}

// SlogSink writes events to a structured logger. Prompt and response bodies
// are only included at debug level.
type SlogSink struct {
	Logger *slog.Logger
}

// RecordLLMRequest logs ev.
func (s SlogSink) RecordLLMRequest(ctx context.Context, ev Event) error {
	attrs := []slog.Attr{
		slog.String("model", ev.Model),
		slog.String("purpose", ev.Purpose),
		slog.String("session_id", ev.SessionID),
		slog.Int64("latency_ms", ev.LatencyMs),
		slog.Int("input_tokens", ev.InputTokens),
		slog.Int("output_tokens", ev.OutputTokens),
	}
	if ev.CostUSD > 0 {
		attrs = append(attrs, slog.Float64("cost_usd", ev.CostUSD))
	}
	if s.Logger.Enabled(ctx, slog.LevelDebug) {
		attrs = append(attrs,
			slog.String("request", ev.RequestBody),
			slog.String("response", ev.ResponseBody),
		)
	}

	if !ev.Success {
		attrs = append(attrs, slog.String("error", ev.ErrorMessage))
		s.Logger.LogAttrs(ctx, slog.LevelWarn, "llm request failed", attrs...)
		return nil
	}
	s.Logger.LogAttrs(ctx, slog.LevelInfo, "llm request", attrs...)
	return nil
}

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner Provider
	sink  EventSink
}

// WithLogging wraps a Provider with event logging. A nil sink discards.
func WithLogging(p Provider, sink EventSink) Provider {
	if sink == nil {
		sink = SlogSink{Logger: slog.New(slog.DiscardHandler)}
	}
	return &LoggingProvider{inner: p, sink: sink}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := Event{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		SessionID:   SessionIDFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.ResponseBody = string(resp.Content)
		if c := LookupCost(resp.Model); c != nil {
			ev.CostUSD = c.Cost(ev.InputTokens, ev.OutputTokens)
		}
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Logging never fails the request.
	_ = l.sink.RecordLLMRequest(ctx, ev)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
