// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by client and status: the two access paths are a customer's
// history and the tracking job's in-delivery scan.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID `gorm:"type:uuid;index"`
	ClientName   string
	ClientPhone  string
	Address      string
	City         string
	Country      string
	AttiekeType  string
	Amount       int
	DeliveryFee  int
	Total        int
	Status       string `gorm:"index"`
	CreatedAt    time.Time
	InDeliveryAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     aggregate.ClientID().Bytes(),
		ClientName:   aggregate.ClientName(),
		ClientPhone:  aggregate.ClientPhone(),
		Address:      aggregate.Address(),
		City:         aggregate.City(),
		Country:      aggregate.Country(),
		AttiekeType:  aggregate.AttiekeType().String(),
		Amount:       aggregate.Amount(),
		DeliveryFee:  aggregate.DeliveryFee(),
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		InDeliveryAt: aggregate.InDeliveryAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the stored total and the
// delivery clock anchor using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	attiekeType, err := order.ParseAttiekeType(dto.AttiekeType)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		dto.ClientName,
		dto.ClientPhone,
		dto.Address,
		dto.City,
		dto.Country,
		attiekeType,
		dto.Amount,
		dto.DeliveryFee,
		dto.Total,
		status,
		dto.CreatedAt,
		dto.InDeliveryAt,
	)
}
