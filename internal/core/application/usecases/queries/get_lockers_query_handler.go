package queries

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLockersQueryHandler retrieves locker availability from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetLockersQueryHandler struct {
	db *gorm.DB
}

// NewGetLockersQueryHandler creates a handler for locker retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetLockersQueryHandler(db *gorm.DB) GetLockersQueryHandler {
	return GetLockersQueryHandler{db: db}
}

// Handle executes the query to retrieve all lockers.
// Returns a slice of locker read models in a stable order.
func (h GetLockersQueryHandler) Handle(
	ctx context.Context,
	query GetLockersQuery,
) ([]GetLockersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lockers := make([]GetLockersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			available
		FROM lockers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLockersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Available,
		)
		if err != nil {
			return nil, err
		}

		lockerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = lockerID

		lockers = append(lockers, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
