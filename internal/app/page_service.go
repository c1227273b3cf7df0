package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen/motivation-page/internal/domain"
	"github.com/jsamuelsen/motivation-page/internal/platform/metrics"
	"github.com/jsamuelsen/motivation-page/internal/ports"
)

// PageService assembles the daily page: the deterministic selection
// plus the best-effort picture of the day.
type PageService struct {
	store   ports.EntryStore
	picture ports.PictureClient
	builder ports.SiteBuilder
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// PageServiceConfig contains configuration for the page service.
type PageServiceConfig struct {
	Store   ports.EntryStore
	Picture ports.PictureClient
	Builder ports.SiteBuilder
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// NewPageService creates a new page service with the provided dependencies.
func NewPageService(cfg PageServiceConfig) *PageService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &PageService{
		store:   cfg.Store,
		picture: cfg.Picture,
		builder: cfg.Builder,
		metrics: cfg.Metrics,
		logger:  logger,
		now:     now,
	}
}

// Today returns the selection for the current date plus the picture of
// the day. The store load and the picture fetch run concurrently.
//
// A store failure is a hard failure: without entries there is no page.
// A picture failure is soft: it is logged, counted, and reported as a
// nil picture, never as an error.
func (s *PageService) Today(ctx context.Context) (*domain.DailySelection, *domain.Picture, error) {
	store, picture, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Store, error) {
			return s.store.Load(ctx)
		},
		func(ctx context.Context) (*domain.Picture, error) {
			return s.fetchPicture(ctx), nil
		},
	)
	if err != nil {
		return nil, nil, err
	}

	return SelectForDate(store, s.now()), picture, nil
}

// Selection returns the deterministic selection for an arbitrary date,
// without the picture.
func (s *PageService) Selection(ctx context.Context, date time.Time) (*domain.DailySelection, error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return SelectForDate(store, date), nil
}

// Picture returns today's picture, or the provider error unmasked.
// Unlike page rendering, API callers get to see why the fetch failed.
func (s *PageService) Picture(ctx context.Context) (*domain.Picture, error) {
	if s.picture == nil {
		return nil, domain.NewUnavailableError("apod", "picture provider disabled")
	}

	picture, err := s.picture.FetchToday(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.PictureFetches.WithLabelValues(metrics.OutcomeFailure).Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PictureFetches.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	return picture, nil
}

// fetchPicture asks the provider for today's picture and degrades to
// nil on any failure.
func (s *PageService) fetchPicture(ctx context.Context) *domain.Picture {
	if s.picture == nil {
		return nil
	}

	picture, err := s.Picture(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "picture of the day unavailable",
			slog.Any("error", err),
		)
		return nil
	}

	return picture
}

// Regenerate runs the static site build step once.
func (s *PageService) Regenerate(ctx context.Context) error {
	err := s.builder.Regenerate(ctx)

	if s.metrics != nil {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeFailure
		}
		s.metrics.RegenerationRuns.WithLabelValues(outcome).Inc()
	}

	return err
}
