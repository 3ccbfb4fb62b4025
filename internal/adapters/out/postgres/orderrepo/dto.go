// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is a database-generated surrogate key. AcceptedBy and AcceptedAt are
// NULL while the order is unclaimed; the claim write sets both together.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RequesterID int64  `gorm:"index"`
	Trade       string `gorm:"type:varchar(255)"`
	Region      string `gorm:"type:varchar(255)"`
	Contact     string `gorm:"type:varchar(32)"`
	Comment     string
	Status      int16 `gorm:"index"`
	AcceptedBy  *int64
	AcceptedAt  *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var acceptedBy *int64
	if id := o.AcceptedBy(); id != nil {
		raw := id.Int64()
		acceptedBy = &raw
	}

	return OrderDTO{
		ID:          o.ID(),
		RequesterID: o.RequesterID().Int64(),
		Trade:       o.Trade(),
		Region:      o.Region(),
		Contact:     o.Contact().String(),
		Comment:     o.Comment(),
		Status:      int16(o.Status()),
		AcceptedBy:  acceptedBy,
		AcceptedAt:  o.AcceptedAt(),
		CreatedAt:   o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the acceptor using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	requesterID, err := kernel.NewUserID(dto.RequesterID)
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewPhone(dto.Contact)
	if err != nil {
		return nil, err
	}

	var acceptedBy *kernel.UserID
	if dto.AcceptedBy != nil {
		workerID, idErr := kernel.NewUserID(*dto.AcceptedBy)
		if idErr != nil {
			return nil, idErr
		}
		acceptedBy = &workerID
	}

	return order.RestoreOrder(
		dto.ID,
		requesterID,
		dto.Trade,
		dto.Region,
		contact,
		dto.Comment,
		order.Status(dto.Status),
		acceptedBy,
		dto.AcceptedAt,
		dto.CreatedAt,
	)
}
