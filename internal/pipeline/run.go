package pipeline

import (
	"context"
	"log"

	"go-codingbuddy-automation/internal/config"
	"go-codingbuddy-automation/internal/sheets"
)

// PartitionResult reports what one (search term → worksheet) pair
// produced in a run.
type PartitionResult struct {
	Term    string
	Sheet   string
	Added   int
	Removed int
	Err     error
}

// Controller sequences fetch → prune → write for every configured
// search. A failure in one partition's pipeline never blocks the next.
type Controller struct {
	orchestrator *Orchestrator
	pruner       *Pruner
	store        sheets.Store
	searches     []config.SearchConfig
}

func NewController(o *Orchestrator, p *Pruner, store sheets.Store, searches []config.SearchConfig) *Controller {
	return &Controller{orchestrator: o, pruner: p, store: store, searches: searches}
}

// Run processes every configured search term and returns per-partition
// counts of jobs added and removed.
func (c *Controller) Run(ctx context.Context) []PartitionResult {
	results := make([]PartitionResult, 0, len(c.searches))
	for _, sc := range c.searches {
		log.Printf("--- Processing: %s ---", sc.Term)
		res := c.runOne(ctx, sc)
		if res.Err != nil {
			log.Printf("❌ Error processing %q: %v", sc.Term, res.Err)
		} else {
			log.Printf("✅ %q: %d added, %d removed", sc.Sheet, res.Added, res.Removed)
		}
		results = append(results, res)
	}
	return results
}

func (c *Controller) runOne(ctx context.Context, sc config.SearchConfig) PartitionResult {
	res := PartitionResult{Term: sc.Term, Sheet: sc.Sheet}

	batch := c.orchestrator.Fetch(ctx, sc.Term)

	part, err := c.store.Partition(ctx, sc.Sheet)
	if err != nil {
		res.Err = err
		return res
	}

	//prune before merging, so a re-discovered posting lands in a clean partition
	removed, err := c.pruner.Prune(ctx, part)
	if err != nil {
		log.Printf("⚠️ Cleanup skipped for %q: %v", sc.Sheet, err)
	}
	res.Removed = removed

	added, err := AppendNew(ctx, part, batch)
	if err != nil {
		res.Err = err
		return res
	}
	res.Added = added
	if added == 0 {
		log.Printf("ℹ️ No NEW jobs found for %q", sc.Sheet)
	}
	return res
}
