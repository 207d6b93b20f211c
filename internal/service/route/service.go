// Package route resolves the ordered station list a product model visits.
package route

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type RouteRepository interface {
	ConfigsForModel(ctx context.Context, q pg.Querier, modelCode string) ([]model.StationRouteConfig, error)
}

type RouteCache interface {
	Get(ctx context.Context, modelCode string) (*model.Route, error)
	Set(ctx context.Context, route model.Route) error
	Invalidate(ctx context.Context, modelCode string) error
}

type service struct {
	db          pg.Querier
	repo        RouteRepository
	cache       RouteCache
	layout      *layout.Layout
	readTimeout time.Duration
}

func NewRouteService(
	db pg.Querier,
	repo RouteRepository,
	cache RouteCache,
	l *layout.Layout,
	readTimeout time.Duration,
) *service {
	return &service{
		db:          db,
		repo:        repo,
		cache:       cache,
		layout:      l,
		readTimeout: readTimeout,
	}
}

// RouteForModel never fails. Missing or unreadable configuration yields the
// mandatory stations only, with UsedFallback set.
func (s *service) RouteForModel(ctx context.Context, modelCode string) model.Route {
	log := logger.With(logger.String("model", modelCode))

	cached, err := s.cache.Get(ctx, modelCode)
	if err != nil {
		log.Warn(ctx, "route cache read failed", logger.ErrorF(err))
	}
	if cached != nil {
		return *cached
	}

	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	cfgs, err := s.repo.ConfigsForModel(readCtx, s.db, modelCode)
	if err != nil {
		log.Error(ctx, "load route config, using fallback", logger.ErrorF(err))
		return s.fallback(modelCode)
	}
	if len(cfgs) == 0 {
		log.Warn(ctx, "no route config, using fallback")
		return s.fallback(modelCode)
	}

	route := s.build(modelCode, cfgs)
	if err := s.cache.Set(ctx, route); err != nil {
		log.Warn(ctx, "route cache write failed", logger.ErrorF(err))
	}

	return route
}

// Invalidate drops a cached route after its configuration changed.
func (s *service) Invalidate(ctx context.Context, modelCode string) error {
	return s.cache.Invalidate(ctx, modelCode)
}

func (s *service) build(modelCode string, cfgs []model.StationRouteConfig) model.Route {
	active := lo.Filter(cfgs, func(c model.StationRouteConfig, _ int) bool {
		return c.Enabled || c.Mandatory
	})
	byStation := lo.KeyBy(active, func(c model.StationRouteConfig) string { return c.StationID })

	ids := append(lo.Keys(byStation), s.layout.Mandatory()...)
	stations := s.layout.Sort(ids)

	expected := make(map[string]time.Duration, len(stations))
	for _, st := range stations {
		if c, ok := byStation[st]; ok && c.Expected > 0 {
			expected[st] = c.Expected
			continue
		}
		expected[st] = s.layout.Expected(st)
	}

	return model.Route{
		ModelCode: modelCode,
		Stations:  stations,
		Expected:  expected,
	}
}

func (s *service) fallback(modelCode string) model.Route {
	metrics.RouteFallbacksTotal.Inc()

	stations := s.layout.Mandatory()
	expected := lo.SliceToMap(stations, func(st string) (string, time.Duration) {
		return st, s.layout.Expected(st)
	})

	return model.Route{
		ModelCode:    modelCode,
		Stations:     stations,
		Expected:     expected,
		UsedFallback: true,
	}
}
