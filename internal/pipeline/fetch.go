// Package pipeline implements the aggregation-curation run:
// fetch → prune → dedup-append, sequenced per topic partition.
package pipeline

import (
	"context"
	"log"

	"go-codingbuddy-automation/internal/config"
	"go-codingbuddy-automation/internal/filter"
	"go-codingbuddy-automation/internal/scraper"
	"go-codingbuddy-automation/internal/scraper/boards"
)

// BoardSource is the slice of the listing-fetch service the
// orchestrator consumes.
type BoardSource interface {
	Search(ctx context.Context, req boards.SearchRequest) ([]scraper.Job, error)
}

// ChannelSource is the optional messaging-channel scanner.
type ChannelSource interface {
	Collect(ctx context.Context, terms []string) ([]scraper.Job, error)
}

// Orchestrator gathers one relevance-filtered batch per search term,
// isolating failures per location × site-group so a fragile source
// never poisons the others.
type Orchestrator struct {
	boards        BoardSource
	channel       ChannelSource //nil = board-only sourcing
	classifier    *filter.Classifier
	locations     []string
	siteGroups    [][]string
	resultsWanted int
	hoursOld      int
	country       string
}

func NewOrchestrator(b BoardSource, ch ChannelSource, cl *filter.Classifier, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		boards:        b,
		channel:       ch,
		classifier:    cl,
		locations:     cfg.Locations,
		siteGroups:    cfg.SiteGroups,
		resultsWanted: cfg.ResultsWanted,
		hoursOld:      cfg.HoursOld,
		country:       cfg.Country,
	}
}

// Fetch returns the combined, classifier-filtered batch for one search
// term. Rows may repeat across locations and site groups; deduplication
// is entirely the writer's job.
func (o *Orchestrator) Fetch(ctx context.Context, term string) []scraper.Job {
	var batch []scraper.Job

	for _, location := range o.locations {
		log.Printf("🔍 Fetching jobs for %q in %q...", term, location)
		for _, group := range o.siteGroups {
			jobs, err := o.boards.Search(ctx, boards.SearchRequest{
				SiteName:      group,
				SearchTerm:    term,
				Location:      location,
				ResultsWanted: o.resultsWanted,
				HoursOld:      o.hoursOld,
				CountryIndeed: o.country,
			})
			if err != nil {
				//one failing group must not discard what other groups found
				log.Printf("⚠️ Error fetching %v jobs for %s: %v", group, location, err)
				continue
			}
			batch = append(batch, jobs...)
		}
	}

	if o.channel != nil {
		jobs, err := o.channel.Collect(ctx, []string{term})
		if err != nil {
			log.Printf("⚠️ Telegram scan failed: %v. Continuing with board results.", err)
		} else {
			batch = append(batch, jobs...)
		}
	}

	kept := make([]scraper.Job, 0, len(batch))
	for _, job := range batch {
		if o.classifier.Keep(job.Title, job.Description, term) {
			kept = append(kept, job)
		}
	}
	log.Printf("📦 %q: %d fetched, %d relevant", term, len(batch), len(kept))
	return kept
}
