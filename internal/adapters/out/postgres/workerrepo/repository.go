package workerrepo

import (
	"context"
	"errors"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileColumns are the columns a re-registration may overwrite.
// Availability and active are deliberately absent: an existing worker's
// operational state survives profile updates.
var profileColumns = []string{"name", "phone", "trade", "region", "updated_at"}

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Upsert inserts a worker or refreshes the profile of an existing one.
// Implemented as a single INSERT ... ON CONFLICT so concurrent registrations
// of the same identity cannot race each other.
func (r *GormWorkerRepository) Upsert(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(profileColumns),
	}).Create(&dto).Error
}

// Update saves an existing worker to the database.
// All columns are written explicitly so false and zero values persist.
func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "trade", "region", "availability", "active", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a worker by its identity.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UserID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all workers eligible for matching.
func (r *GormWorkerRepository) GetAllActive(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	workers := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, nil
}
