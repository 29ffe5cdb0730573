package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-codingbuddy-automation/internal/config"
	"go-codingbuddy-automation/internal/filter"
	"go-codingbuddy-automation/internal/scraper"
	"go-codingbuddy-automation/internal/scraper/boards"
)

type fakeBoards struct {
	fn    func(req boards.SearchRequest) ([]scraper.Job, error)
	calls []boards.SearchRequest
}

func (f *fakeBoards) Search(ctx context.Context, req boards.SearchRequest) ([]scraper.Job, error) {
	f.calls = append(f.calls, req)
	return f.fn(req)
}

type fakeChannel struct {
	jobs []scraper.Job
	err  error
}

func (f *fakeChannel) Collect(ctx context.Context, terms []string) ([]scraper.Job, error) {
	return f.jobs, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Locations:     []string{"Hyderabad", "Chennai"},
		SiteGroups:    [][]string{{"indeed", "linkedin"}, {"naukri"}},
		ResultsWanted: 20,
		HoursOld:      72,
		Country:       "India",
	}
}

func testClassifier() *filter.Classifier {
	return filter.NewClassifier(filter.Keywords{
		Positive: []string{"medical coding"},
		Negative: []string{"software engineer"},
	})
}

func TestFetchGroupFailureIsIsolated(t *testing.T) {
	b := &fakeBoards{fn: func(req boards.SearchRequest) ([]scraper.Job, error) {
		if req.SiteName[0] == "naukri" {
			return nil, errors.New("captcha wall")
		}
		return []scraper.Job{{URL: "https://" + req.Location, Title: "Medical Coding Specialist"}}, nil
	}}

	o := NewOrchestrator(b, nil, testClassifier(), testConfig())
	batch := o.Fetch(context.Background(), "Medical coding")

	//2 locations × the surviving group
	assert.Len(t, batch, 2)
	assert.Len(t, b.calls, 4) //every location × group pair was still attempted
}

func TestFetchAppliesClassifier(t *testing.T) {
	b := &fakeBoards{fn: func(req boards.SearchRequest) ([]scraper.Job, error) {
		return []scraper.Job{
			{URL: "1", Title: "Medical Coding Specialist"},
			{URL: "2", Title: "Software Engineer", Description: "medical coding tools"},
			{URL: "3", Title: "Sales Executive"},
		}, nil
	}}
	cfg := testConfig()
	cfg.Locations = []string{"Hyderabad"}
	cfg.SiteGroups = [][]string{{"indeed"}}

	o := NewOrchestrator(b, nil, testClassifier(), cfg)
	batch := o.Fetch(context.Background(), "Medical coding")

	assert.Len(t, batch, 1)
	assert.Equal(t, "1", batch[0].URL)
}

func TestFetchMergesChannelResults(t *testing.T) {
	b := &fakeBoards{fn: func(req boards.SearchRequest) ([]scraper.Job, error) {
		return []scraper.Job{{URL: "board", Title: "Medical Coding Specialist"}}, nil
	}}
	ch := &fakeChannel{jobs: []scraper.Job{
		{URL: "https://t.me/jobs/1", Title: "Telegram: Jobs", Description: "medical coding opening"},
	}}
	cfg := testConfig()
	cfg.Locations = []string{"Hyderabad"}
	cfg.SiteGroups = [][]string{{"indeed"}}

	o := NewOrchestrator(b, ch, testClassifier(), cfg)
	batch := o.Fetch(context.Background(), "Medical coding")

	assert.Len(t, batch, 2)
}

func TestFetchChannelFailureKeepsBoardResults(t *testing.T) {
	b := &fakeBoards{fn: func(req boards.SearchRequest) ([]scraper.Job, error) {
		return []scraper.Job{{URL: "board", Title: "Medical Coding Specialist"}}, nil
	}}
	ch := &fakeChannel{err: errors.New("session expired")}
	cfg := testConfig()
	cfg.Locations = []string{"Hyderabad"}
	cfg.SiteGroups = [][]string{{"indeed"}}

	o := NewOrchestrator(b, ch, testClassifier(), cfg)
	batch := o.Fetch(context.Background(), "Medical coding")

	assert.Len(t, batch, 1)
}

func TestFetchKeepsCrossSourceRepeats(t *testing.T) {
	//no dedup here: rows repeating across locations stay in the batch,
	//the writer collapses them later
	b := &fakeBoards{fn: func(req boards.SearchRequest) ([]scraper.Job, error) {
		return []scraper.Job{{URL: "same", Title: "Medical Coding Specialist"}}, nil
	}}

	o := NewOrchestrator(b, nil, testClassifier(), testConfig())
	batch := o.Fetch(context.Background(), "Medical coding")

	assert.Len(t, batch, 4) //2 locations × 2 groups, all kept
}
