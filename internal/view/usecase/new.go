package usecase

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"production-board/config"
	"production-board/internal/dataview"
	"production-board/internal/view"
	"production-board/pkg/datemath"
	"production-board/pkg/log"
)

// implUseCase is the private implementation of view.UseCase.
type implUseCase struct {
	l           log.Logger
	dateMath    *datemath.Parser
	collections map[view.Kind]dataview.FilterConfig
	cache       *lru.Cache[string, any] // nil when memoization is off
	now         func() time.Time
}

// New creates a new view UseCase implementation.
func New(l log.Logger, dateMath *datemath.Parser, cfg config.ViewConfig) (*implUseCase, error) {
	collections, err := filterConfigs(cfg.Collections)
	if err != nil {
		return nil, err
	}

	uc := &implUseCase{
		l:           l,
		dateMath:    dateMath,
		collections: collections,
		now:         time.Now,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, any](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("view cache: %w", err)
		}
		uc.cache = cache
	}

	return uc, nil
}

// filterConfigs turns the configured collections into engine configs.
// Kinds missing from the config get alpha / ascending with no search fields.
func filterConfigs(in map[string]config.CollectionConfig) (map[view.Kind]dataview.FilterConfig, error) {
	out := make(map[view.Kind]dataview.FilterConfig, len(view.Kinds))
	for _, kind := range view.Kinds {
		c := in[string(kind)]

		dir := dataview.Ascending
		if c.DefaultDirection != "" {
			d, ok := dataview.ParseDirection(c.DefaultDirection)
			if !ok {
				return nil, fmt.Errorf("%s: %w", kind, view.ErrInvalidDirection)
			}
			dir = d
		}

		out[kind] = dataview.FilterConfig{
			SearchFields:     c.SearchFields,
			DefaultSort:      dataview.ParseSort(c.DefaultSort),
			DefaultDirection: dir,
		}
	}
	return out, nil
}
