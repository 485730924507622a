// Package tutor is the service surface the front ends call: choosing a lesson
// for a module and running a practice query.
package tutor

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// DefaultDelay is the pause before a lesson or query result is returned.
const DefaultDelay = 600 * time.Millisecond

// Config wires dependencies for the service. Zero values pick defaults: the
// embedded curriculum, the fixture evaluator, a nop logger and a private
// registry. A negative Delay disables the pause.
type Config struct {
	Catalog    *curriculum.Catalog
	Evaluator  *evaluator.Evaluator
	Delay      time.Duration
	Logger     log.Logger
	Registerer prometheus.Registerer
}

// Service answers lesson and query requests. It is safe for concurrent use.
type Service struct {
	catalog   *curriculum.Catalog
	evaluator *evaluator.Evaluator
	delay     time.Duration
	logger    log.Logger
	metrics   *metrics
	sleep     func(ctx context.Context, d time.Duration)
}

// New builds a service from cfg.
func New(cfg Config) (*Service, error) {
	catalog := cfg.Catalog
	if catalog == nil {
		defaultCatalog, err := curriculum.Default()
		if err != nil {
			return nil, err
		}
		catalog = defaultCatalog
	}
	eval := cfg.Evaluator
	if eval == nil {
		eval = evaluator.Default()
	}
	delay := cfg.Delay
	switch {
	case delay == 0:
		delay = DefaultDelay
	case delay < 0:
		delay = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Service{
		catalog:   catalog,
		evaluator: eval,
		delay:     delay,
		logger:    log.With(logger, "component", "tutor"),
		metrics:   newMetrics(reg),
		sleep:     sleepContext,
	}, nil
}

// Modules returns the curriculum modules in sidebar order.
func (s *Service) Modules() []curriculum.Module {
	return s.catalog.Modules()
}

// SelectModule returns the lesson for a module title after the configured
// delay. A done context shortens the delay but a lesson is still returned.
func (s *Service) SelectModule(ctx context.Context, title string) curriculum.Lesson {
	s.sleep(ctx, s.delay)
	key := s.catalog.LessonKey(title)
	lesson := s.catalog.Lookup(title)
	s.metrics.lessonsSelected.WithLabelValues(key).Inc()
	level.Debug(s.logger).Log("msg", "lesson selected", "title", title, "lesson", key)
	return lesson
}

// LessonForModule resolves a module id to its title and selects its lesson.
func (s *Service) LessonForModule(ctx context.Context, id string) (curriculum.Lesson, bool) {
	module, ok := s.catalog.ModuleByID(id)
	if !ok {
		return curriculum.Lesson{}, false
	}
	return s.SelectModule(ctx, module.Title), true
}

// RunQuery evaluates text after the configured delay. Failures are logged and
// reported through the result's error field.
func (s *Service) RunQuery(ctx context.Context, text string) evaluator.QueryResult {
	s.sleep(ctx, s.delay)
	queryID := uuid.NewString()
	start := time.Now()
	result, err := s.evaluator.Run(text)
	s.metrics.queryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.queries.WithLabelValues(outcomeError).Inc()
		level.Warn(s.logger).Log("msg", "query failed", "query_id", queryID, "query", text, "err", err)
		return result
	}
	s.metrics.queries.WithLabelValues(outcomeOK).Inc()
	level.Debug(s.logger).Log("msg", "query evaluated", "query_id", queryID, "columns", len(result.Columns), "rows", len(result.Rows))
	return result
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
