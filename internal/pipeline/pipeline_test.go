package pipeline

import (
	"context"
	"fmt"

	"go-codingbuddy-automation/internal/sheets"
)

// memPartition is an in-memory stand-in for one worksheet.
type memPartition struct {
	values     [][]string
	reads      int
	appends    int
	overwrites int
	readErr    error
	failReads  int //fail this many reads, then succeed
	appendErr  error
}

func (m *memPartition) Values(ctx context.Context) ([][]string, error) {
	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.failReads > 0 {
		m.failReads--
		return nil, fmt.Errorf("transient read failure")
	}
	return m.values, nil
}

func (m *memPartition) Append(ctx context.Context, rows [][]string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.values = append(m.values, rows...)
	return nil
}

func (m *memPartition) Overwrite(ctx context.Context, values [][]string) error {
	m.overwrites++
	m.values = values
	return nil
}

// memStore hands out fixed partitions by name.
type memStore struct {
	partitions map[string]*memPartition
	errFor     map[string]error
}

func (m *memStore) Partition(ctx context.Context, name string) (sheets.Partition, error) {
	if err, ok := m.errFor[name]; ok {
		return nil, err
	}
	return m.partitions[name], nil
}
