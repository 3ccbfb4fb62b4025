// Package workerrepo provides data transfer objects and mapping functions for
// worker persistence. It implements the repository pattern for the worker
// domain aggregate, handling the conversion between domain entities and
// database representations.
package workerrepo

import (
	"time"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/worker"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
// The primary key is the worker's stable external identity, never generated.
// Trade and region are indexed because candidate selection filters on them.
type WorkerDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(32)"`
	Trade        string `gorm:"type:varchar(255);index"`
	Region       string `gorm:"type:varchar(255);index"`
	Availability int16
	Active       bool      `gorm:"index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(w *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:           w.ID().Int64(),
		Name:         w.Name(),
		Phone:        w.Phone().String(),
		Trade:        w.Trade(),
		Region:       w.Region(),
		Availability: int16(w.Availability()),
		Active:       w.Active(),
		UpdatedAt:    w.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
// Reconstructs the complete aggregate using RestoreWorker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(
		id,
		dto.Name,
		phone,
		dto.Trade,
		dto.Region,
		worker.Availability(dto.Availability),
		dto.Active,
		dto.UpdatedAt,
	)
}
