package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// SummaryCache holds project summaries between mutations.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// NopSummaryCache never stores anything.
type NopSummaryCache struct{}

func (NopSummaryCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopSummaryCache) Set(context.Context, string, any) error         { return nil }
func (NopSummaryCache) Delete(context.Context, ...string) error        { return nil }

func summaryKey(projectID int64) string {
	return "project:summary:" + strconv.FormatInt(projectID, 10)
}

// forgetSummaries drops cached summaries of the given projects; nil ids are skipped.
// Errors are logged, the entry still expires with its TTL.
func forgetSummaries(ctx context.Context, c SummaryCache, log *zap.Logger, projectIDs ...*int64) {
	keys := make([]string, 0, len(projectIDs))
	seen := make(map[int64]bool, len(projectIDs))
	for _, id := range projectIDs {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		keys = append(keys, summaryKey(*id))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.Sugar().Warnw("invalidate project summary failed", "keys", keys, "err", err)
	}
}
