package service

import (
	"context"
	"time"

	"featureboard/internal/grid"
	"featureboard/internal/metrics"
	"featureboard/internal/model"
	"featureboard/internal/repository"
	"featureboard/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Page is everything one render of the console needs.
type Page struct {
	Features []model.Feature
	Options  grid.Options
}

// PageService loads the joined feature set and the five option lists. Nothing
// is cached; every call reads the store.
type PageService struct {
	features repository.FeatureInterface
	lookups  repository.LookupInterface
	observer metrics.StoreObserver
}

func NewPageService(features repository.FeatureInterface, lookups repository.LookupInterface, observer metrics.StoreObserver) *PageService {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &PageService{
		features: features,
		lookups:  lookups,
		observer: observer,
	}
}

// Load runs the six fetches concurrently and waits for all of them. A failed
// feature fetch fails the page; a failed lookup leaves its option list empty.
func (s *PageService) Load(ctx context.Context) (*Page, error) {
	page := &Page{}
	var g errgroup.Group

	g.Go(func() error {
		start := time.Now()
		features, err := s.features.ListJoined(ctx)
		s.observer.ObserveQuery("list_features", time.Since(start).Seconds())
		if err != nil {
			logger.Error("failed to fetch features", zap.Error(err))
			return opError(ErrFeaturesFetch, err)
		}
		page.Features = features
		return nil
	})
	s.loadOptions(ctx, &g, &page.Options)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// Options loads only the option lists.
func (s *PageService) Options(ctx context.Context) grid.Options {
	var opts grid.Options
	var g errgroup.Group
	s.loadOptions(ctx, &g, &opts)
	_ = g.Wait()
	return opts
}

func (s *PageService) loadOptions(ctx context.Context, g *errgroup.Group, opts *grid.Options) {
	g.Go(func() error {
		opts.Status = lookup(ctx, s, "statuses", s.lookups.Statuses, func(v model.Status) grid.Option {
			return grid.Option{Label: v.Name, Value: v.ID}
		})
		return nil
	})
	g.Go(func() error {
		opts.Priority = lookup(ctx, s, "moscow_priorities", s.lookups.MoscowPriorities, func(v model.MoscowPriority) grid.Option {
			return grid.Option{Label: v.Name, Value: v.ID}
		})
		return nil
	})
	g.Go(func() error {
		opts.Team = lookup(ctx, s, "teams", s.lookups.Teams, func(v model.Team) grid.Option {
			return grid.Option{Label: v.Name, Value: v.ID}
		})
		return nil
	})
	g.Go(func() error {
		opts.FeatureType = lookup(ctx, s, "feature_types", s.lookups.FeatureTypes, func(v model.FeatureType) grid.Option {
			return grid.Option{Label: v.Name, Value: v.ID}
		})
		return nil
	})
	g.Go(func() error {
		opts.BusinessValue = lookup(ctx, s, "business_values", s.lookups.BusinessValues, func(v model.BusinessValue) grid.Option {
			return grid.Option{Label: grid.ValueLabel(v.Value), Value: v.ID}
		})
		return nil
	})
}

// lookup never fails: errors are logged and counted and the list is empty.
func lookup[T any](ctx context.Context, s *PageService, name string, fetch func(context.Context) ([]T, error), option func(T) grid.Option) []grid.Option {
	start := time.Now()
	rows, err := fetch(ctx)
	s.observer.ObserveQuery(name, time.Since(start).Seconds())
	if err != nil {
		logger.Error("failed to fetch lookup", zap.String("lookup", name), zap.Error(err))
		s.observer.RecordLookupDegraded(name)
		return []grid.Option{}
	}
	out := make([]grid.Option, 0, len(rows))
	for _, r := range rows {
		out = append(out, option(r))
	}
	return out
}
