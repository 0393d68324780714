package search

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/classify"
	"golang.org/x/sync/errgroup"
)

// Default enhancement parameters, used when the corresponding Enhancer
// field is zero.
const (
	DefaultBatchSize       = 25
	DefaultEnhanceDeadline = 20 * time.Second
)

// EnhanceResult summarizes a re-enrichment pass.
type EnhanceResult struct {
	// Processed is how many stored leads were run through the
	// extractor in this pass.
	Processed int

	// Improved is how many of those gained an email.
	Improved int

	// Remaining is how many candidate leads are still waiting for a
	// later pass.
	Remaining int
}

// Enhancer re-runs contact extraction over already-stored leads that
// have a website but no email, filling empty fields only. One pass
// works through a bounded batch so a large collection is enhanced
// incrementally across invocations.
type Enhancer struct {
	Store      leadgen.LeadStore
	Extractor  leadgen.ContactExtractor
	Classifier *classify.Classifier
	Logger     *slog.Logger

	// BatchSize caps how many candidate leads one pass processes.
	BatchSize int

	// Workers bounds concurrent extractor calls.
	Workers int

	// Deadline is the wall-clock budget for the whole batch.
	Deadline time.Duration
}

// EnhanceExisting runs one enhancement pass over the owner's stored
// collection and saves the updated leads back.
func (e *Enhancer) EnhanceExisting(ctx context.Context, ownerKey string) (*EnhanceResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	workers := e.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	deadline := e.Deadline
	if deadline <= 0 {
		deadline = DefaultEnhanceDeadline
	}

	leads, err := e.Store.Load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	var candidates []*leadgen.Lead
	for _, l := range leads {
		if l.Website != "" && l.Email == "" {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return &EnhanceResult{}, nil
	}

	batch := candidates
	if len(batch) > batchSize {
		batch = batch[:batchSize]
	}

	ectx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	var improved atomic.Int64
	g, gctx := errgroup.WithContext(ectx)
	g.SetLimit(workers)
	for _, lead := range batch {
		lead := lead
		g.Go(func() error {
			info, err := e.Extractor.Extract(gctx, lead.Website)
			if err != nil {
				logger.Debug("enhancement failed", "url", lead.Website, "err", err)
				return nil
			}
			lead.FillFrom(info)
			// Contact fields changed, so the derived fields must be
			// recomputed before the lead is persisted.
			if e.Classifier != nil {
				e.Classifier.Classify(lead)
			}
			if lead.Email != "" {
				improved.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := e.Store.Save(ctx, ownerKey, leads); err != nil {
		return nil, err
	}

	return &EnhanceResult{
		Processed: len(batch),
		Improved:  int(improved.Load()),
		Remaining: len(candidates) - len(batch),
	}, nil
}
