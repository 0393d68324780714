// Package search orchestrates lead discovery: it fans a query out
// across search sources, enriches the results with contact signals
// from the leads' own websites, classifies and scores every lead, and
// falls back to canned demo data when every live source fails.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/classify"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxLeadCount caps how many leads a single search request may ask
// for. Larger requests are clamped, not rejected.
const MaxLeadCount = 50

// Default orchestration parameters, used when the corresponding
// Searcher field is zero.
const (
	DefaultEnrichLimit    = 10
	DefaultWorkers        = 3
	DefaultEnrichDeadline = 10 * time.Second
)

// Searcher runs the lead-discovery pipeline for one search request.
type Searcher struct {
	Primary  leadgen.SearchSource
	Fallback leadgen.SearchSource
	Demo     leadgen.SearchSource

	Extractor  leadgen.ContactExtractor
	Prober     leadgen.Prober
	Classifier *classify.Classifier
	Logger     *slog.Logger

	// EnrichLimit caps how many leads get a contact-extraction pass.
	EnrichLimit int

	// Workers bounds concurrent extractor calls.
	Workers int

	// EnrichDeadline is the wall-clock budget for the whole
	// enrichment batch. Tasks outstanding past it are cancelled and
	// their leads left un-enriched.
	EnrichDeadline time.Duration
}

// FindLeads searches for businesses of the given type in the given
// location and returns classified, scored leads sorted by priority.
// count below 1 is an error; above MaxLeadCount it is clamped. Total
// source failure falls back to demo data rather than returning an
// error, so callers must check Source to tell live leads from canned
// ones.
func (s *Searcher) FindLeads(ctx context.Context, businessType, location string, count int) ([]*leadgen.Lead, error) {
	if businessType == "" {
		return nil, leadgen.Errorf(leadgen.EINVALID, "business type required")
	}
	if location == "" {
		return nil, leadgen.Errorf(leadgen.EINVALID, "location required")
	}
	if count < 1 {
		return nil, leadgen.Errorf(leadgen.EINVALID, "count must be at least 1")
	}
	if count > MaxLeadCount {
		count = MaxLeadCount
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	query := leadgen.SearchQuery{BusinessType: businessType, Location: location, Limit: count}

	var leads []*leadgen.Lead
	if s.Primary != nil {
		primary, err := s.Primary.Search(ctx, query)
		if err != nil {
			logger.Warn("primary source failed", "source", s.Primary.Name(), "err", err)
		} else {
			leads = primary
		}
	}

	if len(leads) < count && s.Fallback != nil {
		query.Limit = count - len(leads)
		fallback, err := s.Fallback.Search(ctx, query)
		if err != nil {
			logger.Warn("fallback source failed", "source", s.Fallback.Name(), "err", err)
		} else {
			leads = leadgen.MergeLeads(leads, fallback)
		}
	}

	if len(leads) == 0 {
		if s.Demo == nil {
			return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "all search sources failed")
		}
		logger.Info("all live sources failed, generating demo leads",
			"business_type", businessType, "location", location)
		demo, err := s.Demo.Search(ctx, leadgen.SearchQuery{BusinessType: businessType, Location: location, Limit: count})
		if err != nil {
			return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "all search sources failed")
		}
		return s.finalize(demo, count), nil
	}

	s.probeMissingWebsites(ctx, leads)
	s.enrich(ctx, leads, logger)

	// Directory and review sites are not the business's own website.
	// A lead with no website at all is still worth keeping.
	filtered := leads[:0]
	for _, l := range leads {
		if l.Website == "" || leadgen.IsValidBusinessWebsite(l.Website) {
			filtered = append(filtered, l)
		}
	}

	return s.finalize(filtered, count), nil
}

// probeMissingWebsites guesses a website for leads that have a name but
// no website, keeping the guess only when it answers HTTP 200.
func (s *Searcher) probeMissingWebsites(ctx context.Context, leads []*leadgen.Lead) {
	if s.Prober == nil {
		return
	}
	for _, l := range leads {
		if l.Website != "" || l.Name == "" {
			continue
		}
		domain := leadgen.GuessDomainFromName(l.Name)
		if domain == "" {
			continue
		}
		candidate := "https://www." + domain
		if !leadgen.IsValidBusinessWebsite(candidate) {
			continue
		}
		status, err := s.Prober.Probe(ctx, candidate)
		if err != nil || status != 200 {
			continue
		}
		l.Website = candidate
		l.Domain = leadgen.ExtractDomain(candidate)
	}
}

// enrich runs the contact extractor over leads with valid websites,
// bounded by EnrichLimit, Workers, and EnrichDeadline. Each worker
// writes only into its own lead. Extraction failures leave the lead
// un-enriched; they never fail the request.
func (s *Searcher) enrich(ctx context.Context, leads []*leadgen.Lead, logger *slog.Logger) {
	if s.Extractor == nil {
		return
	}

	limit := s.EnrichLimit
	if limit <= 0 {
		limit = DefaultEnrichLimit
	}
	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	deadline := s.EnrichDeadline
	if deadline <= 0 {
		deadline = DefaultEnrichDeadline
	}

	var batch []*leadgen.Lead
	for _, l := range leads {
		if len(batch) == limit {
			break
		}
		if l.Website != "" && leadgen.IsValidBusinessWebsite(l.Website) {
			batch = append(batch, l)
		}
	}
	if len(batch) == 0 {
		return
	}

	ectx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	g, gctx := errgroup.WithContext(ectx)
	g.SetLimit(workers)
	for _, lead := range batch {
		lead := lead
		g.Go(func() error {
			info, err := s.Extractor.Extract(gctx, lead.Website)
			if err != nil {
				logger.Debug("enrichment failed", "url", lead.Website, "err", err)
				return nil
			}
			lead.FillFrom(info)
			return nil
		})
	}
	_ = g.Wait()
}

// finalize stamps identity and creation time, classifies and scores
// each lead, and returns the top leads by priority.
func (s *Searcher) finalize(leads []*leadgen.Lead, count int) []*leadgen.Lead {
	now := time.Now().UTC()
	for _, l := range leads {
		l.ID = uuid.New().String()
		l.CreatedAt = now
		if s.Classifier != nil {
			s.Classifier.Classify(l)
		}
		if l.Source == "demo_data" {
			l.LeadType = "Demo Lead"
		}
	}
	leadgen.SortByPriority(leads)
	if len(leads) > count {
		leads = leads[:count]
	}
	return leads
}
