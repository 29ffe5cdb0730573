package pipeline

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"go-codingbuddy-automation/internal/scraper"
	"go-codingbuddy-automation/internal/sheets"
)

// AppendNew writes the batch rows whose url has not been seen before
// and returns the number appended.
//
// The existing-link set is rebuilt from the partition's current
// contents on every call and never cached across runs, so external
// edits to the store between runs are picked up. Rows with an empty url
// carry no dedup key: they are appended per instance and never counted
// as duplicates of each other. Within-batch repeats are collapsed the
// same way persisted duplicates are.
func AppendNew(ctx context.Context, part sheets.Partition, batch []scraper.Job) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	values, err := part.Values(ctx)
	if err != nil {
		return 0, fmt.Errorf("read partition: %w", err)
	}

	existing := mapset.NewSet[string]()
	urlCol := -1
	if len(values) > 0 {
		for i, name := range values[0] {
			if name == "job_url" {
				urlCol = i
				break
			}
		}
	}
	//a header without job_url is a malformed/legacy schema: its rows
	//carry no locatable keys, so they contribute nothing to dedup
	if urlCol >= 0 {
		for _, row := range values[1:] {
			if u := cell(row, urlCol); u != "" {
				existing.Add(u)
			}
		}
	}

	var rows [][]string
	for _, job := range batch {
		if job.URL != "" {
			if existing.Contains(job.URL) {
				continue
			}
			existing.Add(job.URL)
		}
		rows = append(rows, job.Row())
	}
	if len(rows) == 0 {
		return 0, nil
	}

	//first use of the partition: the header goes in ahead of the rows
	if len(values) == 0 {
		rows = append([][]string{scraper.Columns}, rows...)
		if err := part.Append(ctx, rows); err != nil {
			return 0, fmt.Errorf("append rows: %w", err)
		}
		return len(rows) - 1, nil
	}

	if err := part.Append(ctx, rows); err != nil {
		return 0, fmt.Errorf("append rows: %w", err)
	}
	return len(rows), nil
}
