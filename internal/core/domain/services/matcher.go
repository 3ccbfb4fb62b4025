package services

import (
	"sort"
	"strings"

	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"
)

// Matcher is a domain service that selects the workers eligible to receive a
// given order's notification.
//
// Eligibility rules:
//   - The worker must be active
//   - The order's trade must be a case-insensitive substring of the worker's trade
//   - The order's region must be a case-insensitive substring of the worker's region
//
// Substring matching over exact matching is deliberate: trade and region are
// free-text labels from independent intake flows and rarely normalize
// identically, so the matcher trades precision for recall.
//
// Ordering: most-recently-updated first, ties broken by descending id so the
// result is deterministic. The result is truncated to the candidate limit.
//
// The matcher is a pure query with no side effects; an empty result is a
// valid outcome, not an error.
//
// Example usage:
//
//	matcher := services.NewMatcher()
//	candidates, err := matcher.FindCandidates(order, workers, 10)
//	if err != nil {
//	    // invalid order or worker slipped through persistence
//	}
//	// candidates is ready for dispatch, best matches first
type Matcher struct{}

// NewMatcher creates a new Matcher instance.
func NewMatcher() Matcher {
	return Matcher{}
}

// FindCandidates filters and ranks workers for the given order.
//
// Parameters:
//   - o: the order to match (must be valid)
//   - workers: the pool to select from, typically all active workers
//   - limit: the candidate cap (must be positive)
//
// Returns the eligible workers in rank order, at most limit entries.
func (m Matcher) FindCandidates(o *order.Order, workers []*worker.Worker, limit int) ([]*worker.Worker, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	candidates := make([]*worker.Worker, 0, limit)
	for _, w := range workers {
		if err := w.Validate(); err != nil {
			return nil, err
		}

		if !w.Active() {
			continue
		}
		if !containsFold(w.Trade(), o.Trade()) || !containsFold(w.Region(), o.Region()) {
			continue
		}

		candidates = append(candidates, w)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].UpdatedAt().Equal(candidates[j].UpdatedAt()) {
			return candidates[i].UpdatedAt().After(candidates[j].UpdatedAt())
		}
		return candidates[i].ID().Int64() > candidates[j].ID().Int64()
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// containsFold reports whether needle is a case-insensitive substring of haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
