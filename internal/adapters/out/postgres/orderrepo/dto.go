// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/domain/model/pricing"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The public "ORD-..." identifier is the primary key; enum attributes are
// stored in their wire forms. Timestamps belong to the domain, so GORM's
// automatic time tracking is disabled on them.
type OrderDTO struct {
	ID                      string     `gorm:"type:text;primaryKey"`
	RecipientName           string
	RecipientPhone          string
	RecipientSecondaryPhone string
	RecipientAddress        string
	DeliveryArea            string     `gorm:"index"`
	PickupAddress           string
	DeliveryAddress         string
	AmountToCollect         int
	DeliveryType            string
	ProductType             string
	TotalWeight             string
	Quantity                int
	ItemDescription         string
	SpecialInstructions     string
	CreatedBy               string     `gorm:"index"`
	Status                  string     `gorm:"index"`
	CreatedAt               time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt               time.Time  `gorm:"autoUpdateTime:false"`
	DeliveredAt             *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TrackingEventDTO represents one tracking history row. The composite
// (order_id, seq) key makes re-inserting an already stored prefix of the
// history a no-op, which is how appends stay idempotent on update.
type TrackingEventDTO struct {
	OrderID     string `gorm:"type:text;primaryKey"`
	Seq         int    `gorm:"primaryKey"`
	StatusLabel string
	Timestamp   time.Time `gorm:"autoCreateTime:false"`
	Location    string
	Description string
}

// TableName specifies the database table name for tracking history rows.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []TrackingEventDTO) {
	details := aggregate.Details()
	id := aggregate.ID().String()

	dto := OrderDTO{
		ID:                      id,
		RecipientName:           details.RecipientName,
		RecipientPhone:          details.RecipientPhone,
		RecipientSecondaryPhone: details.RecipientSecondaryPhone,
		RecipientAddress:        details.RecipientAddress,
		DeliveryArea:            details.DeliveryArea,
		PickupAddress:           details.PickupAddress,
		DeliveryAddress:         details.DeliveryAddress,
		AmountToCollect:         details.AmountToCollect,
		DeliveryType:            details.SpeedTier.String(),
		ProductType:             details.PackageType.String(),
		TotalWeight:             details.WeightBand.String(),
		Quantity:                details.Quantity,
		ItemDescription:         details.ItemDescription,
		SpecialInstructions:     details.SpecialInstructions,
		CreatedBy:               details.CreatedBy,
		Status:                  aggregate.Status().String(),
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
		DeliveredAt:             aggregate.DeliveredAt(),
	}

	history := aggregate.TrackingHistory()
	events := make([]TrackingEventDTO, 0, len(history))
	for seq, event := range history {
		events = append(events, TrackingEventDTO{
			OrderID:     id,
			Seq:         seq,
			StatusLabel: event.StatusLabel(),
			Timestamp:   event.Timestamp(),
			Location:    event.Location(),
			Description: event.Description(),
		})
	}

	return dto, events
}

// toDomain converts database rows back to an order domain aggregate.
// Event rows must arrive in seq order.
func toDomain(dto OrderDTO, eventDTOs []TrackingEventDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	speedTier, err := pricing.SpeedTierFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	packageType, err := pricing.PackageTypeFromString(dto.ProductType)
	if err != nil {
		return nil, err
	}
	weightBand, err := pricing.WeightBandFromString(dto.TotalWeight)
	if err != nil {
		return nil, err
	}

	history := make([]order.TrackingEvent, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := order.NewTrackingEvent(
			eventDTO.StatusLabel, eventDTO.Timestamp, eventDTO.Location, eventDTO.Description,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	details := order.Details{
		RecipientName:           dto.RecipientName,
		RecipientPhone:          dto.RecipientPhone,
		RecipientSecondaryPhone: dto.RecipientSecondaryPhone,
		RecipientAddress:        dto.RecipientAddress,
		DeliveryArea:            dto.DeliveryArea,
		PickupAddress:           dto.PickupAddress,
		DeliveryAddress:         dto.DeliveryAddress,
		AmountToCollect:         dto.AmountToCollect,
		SpeedTier:               speedTier,
		PackageType:             packageType,
		WeightBand:              weightBand,
		Quantity:                dto.Quantity,
		ItemDescription:         dto.ItemDescription,
		SpecialInstructions:     dto.SpecialInstructions,
		CreatedBy:               dto.CreatedBy,
	}

	return order.RestoreOrder(id, details, status, dto.CreatedAt, dto.UpdatedAt, dto.DeliveredAt, history)
}
