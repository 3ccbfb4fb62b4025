package queries

import (
	"errors"
	"strings"
	"time"

	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var (
	ErrFindCandidatesQueryIsNotConstructed = errors.New(
		"FindCandidatesQuery must be created via NewFindCandidatesQuery constructor",
	)
)

// FindCandidatesQuery previews which workers an order with the given trade and
// region would reach. The predicate mirrors the in-process matcher: active
// workers whose trade and region contain the given values, case-insensitive,
// most recently updated first.
//
// Example:
//
//	query, _ := NewFindCandidatesQuery("plumb", "north", 10)
//	handler := NewFindCandidatesQueryHandler(db)
//
//	candidates, err := handler.Handle(ctx, query)
type FindCandidatesQuery struct {
	guard guard.ConstructorGuard

	trade  string
	region string
	limit  int
}

// NewFindCandidatesQuery creates a validated FindCandidatesQuery.
func NewFindCandidatesQuery(trade, region string, limit int) (FindCandidatesQuery, error) {
	trade = strings.TrimSpace(trade)
	region = strings.TrimSpace(region)

	if trade == "" {
		return FindCandidatesQuery{}, errs.NewValueIsRequiredError("trade")
	}
	if region == "" {
		return FindCandidatesQuery{}, errs.NewValueIsRequiredError("region")
	}
	if limit <= 0 {
		return FindCandidatesQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return FindCandidatesQuery{
		guard:  guard.NewConstructorGuard(),
		trade:  trade,
		region: region,
		limit:  limit,
	}, nil
}

func (q FindCandidatesQuery) Trade() string {
	return q.trade
}

func (q FindCandidatesQuery) Region() string {
	return q.region
}

func (q FindCandidatesQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindCandidatesQueryIsNotConstructed if validation fails.
func (q FindCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrFindCandidatesQueryIsNotConstructed)
}

// FindCandidatesQueryResponse represents a matching worker in the read model.
type FindCandidatesQueryResponse struct {
	ID        int64
	Name      string
	Trade     string
	Region    string
	UpdatedAt time.Time
}
