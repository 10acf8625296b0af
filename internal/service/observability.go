package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "roadmap_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "roadmap_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// tracker times one use case and reports it when done is called.
type tracker struct {
	observer  UseCaseObserver
	name      string
	fields    map[string]any
	startedAt time.Time
}

func track(observer UseCaseObserver, name string, fields map[string]any) *tracker {
	if fields == nil {
		fields = map[string]any{}
	}
	return &tracker{observer: observer, name: name, fields: fields, startedAt: time.Now().UTC()}
}

func (t *tracker) done(ctx context.Context, err error) {
	t.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      t.name,
		StartedAt: t.startedAt,
		Duration:  time.Since(t.startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    t.fields,
	})
}
