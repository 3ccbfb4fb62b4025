package orderrepo

import (
	"context"
	"errors"
	"time"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and feeds the generated key back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Accept performs the conditional claim write. The status predicate makes the
// transition atomic: of any number of concurrent claims the database applies
// exactly one, and everyone else sees zero rows affected.
func (r *GormOrderRepository) Accept(
	ctx context.Context,
	orderID int64,
	workerID kernel.UserID,
	at time.Time,
) (bool, error) {
	if orderID <= 0 {
		return false, errs.NewValueIsInvalidError("orderID")
	}
	if err := workerID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", orderID, int16(order.New)).
		Updates(map[string]any{
			"status":      int16(order.Accepted),
			"accepted_by": workerID.Int64(),
			"accepted_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
