package store

import (
	"context"
	"errors"

	"github.com/eth-easl/analyzer/pkg/common"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnavailable = errors.New("store not available")
)

// RecordStore persists analysis records and hands out their generated ids.
type RecordStore interface {
	Save(ctx context.Context, record *common.AnalysisRecord) (int64, error)
	Get(ctx context.Context, id int64) (*common.AnalysisRecord, error)
	Close() error
}
