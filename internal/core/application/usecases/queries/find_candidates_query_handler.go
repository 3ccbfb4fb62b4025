package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// FindCandidatesQueryHandler previews candidate matching against the database.
// The SQL predicate is kept in lockstep with the domain matcher so a preview
// never disagrees with an actual dispatch.
type FindCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewFindCandidatesQueryHandler creates a handler for candidate preview queries.
// Requires a GORM database connection for query execution.
func NewFindCandidatesQueryHandler(db *gorm.DB) FindCandidatesQueryHandler {
	return FindCandidatesQueryHandler{db: db}
}

// Handle executes the candidate preview.
// Returns matching workers, most recently updated first, capped at the limit.
func (h FindCandidatesQueryHandler) Handle(
	ctx context.Context,
	query FindCandidatesQuery,
) ([]FindCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]FindCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			trade,
			region,
			updated_at
		FROM workers
		WHERE active
		  AND trade ILIKE ?
		  AND region ILIKE ?
		ORDER BY updated_at DESC, id DESC
		LIMIT ?
	`, likePattern(query.Trade()), likePattern(query.Region()), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidate FindCandidatesQueryResponse

		err = rows.Scan(
			&candidate.ID,
			&candidate.Name,
			&candidate.Trade,
			&candidate.Region,
			&candidate.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// likePattern wraps a value for substring matching, escaping LIKE wildcards
// so user input is matched literally.
func likePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(value) + "%"
}
