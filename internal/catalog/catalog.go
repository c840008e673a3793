// Package catalog holds the static indicator catalog, the fallback entity
// lists and the EntityCatalog capability shared by remote and static sources.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"indicomp/internal/logger"
	"indicomp/internal/models"
)

// Catalog errors.
var (
	ErrScopeUnsupported = errors.New("scope not supported by catalog")
	ErrNoEntities       = errors.New("catalog returned no entities")
)

// FallbackNotice is the advisory shown when the static country list is used.
const FallbackNotice = "Using comprehensive country list due to API connectivity."

// EntityCatalog lists the entity names available in a scope.
type EntityCatalog interface {
	ListEntities(ctx context.Context, scope models.Scope) ([]string, error)
}

// Ensure implementations satisfy EntityCatalog.
var (
	_ EntityCatalog = (*StaticCatalog)(nil)
	_ EntityCatalog = (*FallbackCatalog)(nil)
)

// StaticCatalog serves the hard-coded country and region lists.
type StaticCatalog struct{}

// NewStaticCatalog creates a static catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

// ListEntities returns the fallback country list, or the region list of the
// scope's parent country. A country without regions yields an empty list.
func (s *StaticCatalog) ListEntities(_ context.Context, scope models.Scope) ([]string, error) {
	if scope.IsRegional() {
		return Regions(scope.Parent), nil
	}

	return FallbackCountries(), nil
}

// Listing is the outcome of a catalog lookup, including whether the fallback
// served it.
type Listing struct {
	Notice   string
	Names    []string
	Fallback bool
}

// FallbackCatalog tries Primary and serves Fallback when Primary fails or
// returns nothing.
type FallbackCatalog struct {
	primary  EntityCatalog
	fallback EntityCatalog
	logger   *logger.Logger
}

// NewFallbackCatalog decorates primary with a fallback source.
func NewFallbackCatalog(primary, fallback EntityCatalog, log *logger.Logger) *FallbackCatalog {
	if log == nil {
		log = logger.Discard()
	}

	return &FallbackCatalog{primary: primary, fallback: fallback, logger: log}
}

// ListEntities implements EntityCatalog.
func (f *FallbackCatalog) ListEntities(ctx context.Context, scope models.Scope) ([]string, error) {
	listing, err := f.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	return listing.Names, nil
}

// List resolves the scope and reports which source answered. An error is
// returned only when the fallback itself fails.
func (f *FallbackCatalog) List(ctx context.Context, scope models.Scope) (Listing, error) {
	if f.primary != nil {
		names, err := f.primary.ListEntities(ctx, scope)
		if err == nil && len(names) > 0 {
			return Listing{Names: names}, nil
		}

		if err == nil {
			err = ErrNoEntities
		}

		if errors.Is(err, ErrScopeUnsupported) {
			f.logger.Debug("Primary catalog does not serve scope, using static list", "scope", scope.Label())
		} else {
			f.logger.Warn("Primary catalog unavailable, using static list", "scope", scope.Label(), "error", err)
		}

		names, fbErr := f.fallback.ListEntities(ctx, scope)
		if fbErr != nil {
			return Listing{}, fmt.Errorf("fallback catalog failed: %w", fbErr)
		}

		listing := Listing{Names: names, Fallback: true}
		if !errors.Is(err, ErrScopeUnsupported) {
			listing.Notice = FallbackNotice
		}

		return listing, nil
	}

	names, err := f.fallback.ListEntities(ctx, scope)
	if err != nil {
		return Listing{}, fmt.Errorf("fallback catalog failed: %w", err)
	}

	return Listing{Names: names, Fallback: true}, nil
}
