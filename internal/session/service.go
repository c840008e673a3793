package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"indicomp/internal/catalog"
	"indicomp/internal/logger"
	"indicomp/internal/models"
	"indicomp/internal/regional"
)

// Skip reasons.
const (
	ReasonNoCode   = "no country code available"
	ReasonNoRegion = "not a known region of"
	ReasonNoData   = "no data returned"
	ReasonNoParent = "parent country has no data"
	ReasonRepeated = "already selected as"
)

// DataSource resolves indicator values for one country.
type DataSource interface {
	FetchEntityData(ctx context.Context, entityName string, indicatorNames []string) (map[string]models.Value, bool)
}

// EntityLister lists the entities of a scope with an advisory notice.
type EntityLister interface {
	List(ctx context.Context, scope models.Scope) (catalog.Listing, error)
}

// Skip records an entity left out of the dataset.
type Skip struct {
	Entity     string
	Reason     string
	Suggestion string
}

func (s Skip) String() string {
	msg := fmt.Sprintf("%s: %s", s.Entity, s.Reason)
	if s.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", s.Suggestion)
	}

	return msg
}

// Result is the outcome of one query.
type Result struct {
	Dataset *models.Dataset
	ID      string
	Skips   []Skip
	Notices []string
	Elapsed time.Duration
}

// Options configures a Service.
type Options struct {
	Source DataSource
	Lister EntityLister
	Logger *logger.Logger
	NewID  func() string
	Now    func() time.Time
}

// Service runs comparison queries.
type Service struct {
	source DataSource
	lister EntityLister
	logger *logger.Logger
	newID  func() string
	now    func() time.Time
}

// NewService creates a service. Source is required.
func NewService(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		source: opts.Source,
		lister: opts.Lister,
		logger: opts.Logger,
		newID:  opts.NewID,
		now:    opts.Now,
	}
}

// Entities lists the selectable entities for a scope. Without a lister the
// static catalog is used.
func (s *Service) Entities(ctx context.Context, scope models.Scope) (catalog.Listing, error) {
	if s.lister == nil {
		names, err := catalog.NewStaticCatalog().ListEntities(ctx, scope)

		return catalog.Listing{Names: names}, err
	}

	return s.lister.List(ctx, scope)
}

// Run validates the selection and assembles its dataset. Entities that cannot
// be resolved are reported as skips. When nothing could be resolved the
// result is still returned, together with ErrNoData.
func (s *Service) Run(ctx context.Context, sel models.Selection) (*Result, error) {
	if err := Validate(sel); err != nil {
		return nil, err
	}

	start := s.now()
	res := &Result{ID: s.newID()}
	log := s.logger.With("query_id", res.ID)

	scope := sel.Scope()
	indicators := sel.Indicators()
	res.Dataset = models.NewDataset(scope, indicators)

	log.Info("Running comparison",
		"scope", scope.Label(),
		"parent", scope.Parent,
		"entities", len(sel.Entities()),
		"indicators", len(indicators),
	)

	if scope.IsRegional() {
		s.runRegions(ctx, sel, res, log)
		res.Notices = append(res.Notices, regional.Disclaimer)
	} else {
		s.runCountries(ctx, sel, res, log)
	}

	res.Elapsed = s.now().Sub(start)

	log.Info("Comparison finished",
		"rows", res.Dataset.Len(),
		"skipped", len(res.Skips),
		"elapsed", res.Elapsed,
	)

	if res.Dataset.Len() == 0 {
		return res, ErrNoData
	}

	return res, nil
}

func (s *Service) runCountries(ctx context.Context, sel models.Selection, res *Result, log *logger.Logger) {
	indicators := sel.Indicators()
	seen := make(map[string]bool, len(sel.Entities()))

	for _, raw := range sel.Entities() {
		name := catalog.CleanName(raw)
		if seen[name] {
			log.Debug("Skipping repeated entity", "entity", raw, "name", name)
			res.Skips = append(res.Skips, Skip{Entity: raw, Reason: ReasonRepeated + " " + name})

			continue
		}
		seen[name] = true

		values, ok := s.source.FetchEntityData(ctx, name, indicators)
		if !ok {
			skip := Skip{Entity: raw, Reason: ReasonNoCode}
			if near := catalog.Suggest(name, catalog.MappedCountries(), 1); len(near) > 0 {
				skip.Suggestion = near[0]
			}

			log.Warn("Skipping entity", "entity", raw, "reason", skip.Reason, "suggestion", skip.Suggestion)
			res.Skips = append(res.Skips, skip)

			continue
		}

		code, _ := catalog.CountryCode(name)
		s.addRow(res, models.Entity{Name: name, Code: code, Scope: sel.Scope()}, values, log)
	}
}

// runRegions fetches the parent country once and derives every region from
// it.
func (s *Service) runRegions(ctx context.Context, sel models.Selection, res *Result, log *logger.Logger) {
	scope := sel.Scope()
	indicators := sel.Indicators()
	known := catalog.Regions(scope.Parent)

	national, ok := s.source.FetchEntityData(ctx, scope.Parent, indicators)
	if !ok {
		log.Warn("Parent country has no code", "parent", scope.Parent)

		for _, region := range sel.Entities() {
			res.Skips = append(res.Skips, Skip{Entity: region, Reason: ReasonNoParent})
		}

		return
	}

	for _, region := range sel.Entities() {
		if !contains(known, region) {
			skip := Skip{Entity: region, Reason: ReasonNoRegion + " " + scope.Parent}
			if near := catalog.Suggest(region, known, 1); len(near) > 0 {
				skip.Suggestion = near[0]
			}

			log.Warn("Skipping region", "region", region, "suggestion", skip.Suggestion)
			res.Skips = append(res.Skips, skip)

			continue
		}

		values := regional.EstimateAll(scope.Parent, region, national)
		s.addRow(res, models.Entity{Name: region, Scope: scope}, values, log)
	}
}

func (s *Service) addRow(res *Result, entity models.Entity, values map[string]models.Value, log *logger.Logger) {
	valid := 0

	for _, ind := range res.Dataset.Indicators {
		if values[ind].Valid {
			valid++
		}
	}

	if valid == 0 {
		log.Warn("Skipping entity without data", "entity", entity.Name)
		res.Skips = append(res.Skips, Skip{Entity: entity.Name, Reason: ReasonNoData})

		return
	}

	res.Dataset.Add(entity, values)
	log.Debug("Entity resolved", "entity", entity.Name, "valid", valid, "total", len(res.Dataset.Indicators))
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}

	return false
}
