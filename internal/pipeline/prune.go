package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-codingbuddy-automation/internal/sheets"
)

// Pruner removes rows older than the freshness window from a partition.
type Pruner struct {
	windowHours int
	now         func() time.Time
}

func NewPruner(windowHours int) *Pruner {
	return &Pruner{windowHours: windowHours, now: time.Now}
}

// Prune rewrites the partition without expired rows and reports how
// many were dropped. Unknown age is never grounds for deletion: rows
// whose date fails to parse are kept. Empty partitions and partitions
// without a date_posted column are left untouched rather than
// destructively repaired.
func (p *Pruner) Prune(ctx context.Context, part sheets.Partition) (int, error) {
	values, err := part.Values(ctx)
	if err != nil {
		return 0, fmt.Errorf("read partition: %w", err)
	}
	if len(values) == 0 {
		return 0, nil
	}

	header := values[0]
	dateCol := -1
	for i, name := range header {
		if name == "date_posted" {
			dateCol = i
			break
		}
	}
	if dateCol < 0 {
		log.Printf("⚠️ No date_posted column found, skipping cleanup")
		return 0, nil
	}

	today := p.now().UTC().Truncate(24 * time.Hour)
	kept := [][]string{header}
	removed := 0
	for _, row := range values[1:] {
		if p.expired(cell(row, dateCol), today) {
			removed++
			continue
		}
		kept = append(kept, row)
	}

	if removed == 0 {
		return 0, nil //nothing expired, skip the full rewrite
	}
	if err := part.Overwrite(ctx, kept); err != nil {
		return 0, fmt.Errorf("rewrite partition: %w", err)
	}
	return removed, nil
}

// expired reports whether a row posted on dateStr is past the freshness
// window. Only a strict YYYY-MM-DD date can expire a row; empty cells
// and free text like "recently" mean unknown age and are retained.
func (p *Pruner) expired(dateStr string, today time.Time) bool {
	posted, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false
	}
	ageDays := int(today.Sub(posted).Hours() / 24)
	return ageDays*24 > p.windowHours
}

// cell is a bounds-safe row accessor: the sheet service trims trailing
// empty cells, so persisted rows can be shorter than the header.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
