// Package sheets wraps the spreadsheet store behind narrow interfaces
// so the pipeline can run against an in-memory fake in tests.
package sheets

import "context"

// Partition is one named worksheet holding listing rows for a topic.
type Partition interface {
	// Values returns the full contents, header row included. An empty
	// worksheet yields an empty slice. The sheet service trims trailing
	// empty cells, so rows may be shorter than the header.
	Values(ctx context.Context) ([][]string, error)
	// Append adds rows after the current last row.
	Append(ctx context.Context, rows [][]string) error
	// Overwrite clears the worksheet and writes values as its new full
	// contents.
	Overwrite(ctx context.Context, values [][]string) error
}

// Store hands out partitions by name, creating them on first use.
type Store interface {
	Partition(ctx context.Context, name string) (Partition, error)
}
