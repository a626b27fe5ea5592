package queries

import (
	"errors"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/pkg/guard"
)

var ErrCalculateDeliveryQueryIsNotConstructed = errors.New(
	"CalculateDeliveryQuery must be created via NewCalculateDeliveryQuery constructor",
)

// CalculateDeliveryQuery requests a delivery price quote for a prospective
// shipment. It performs no I/O beyond reading the current tariff snapshot;
// nothing is stored.
//
// Example:
//
//	query, err := NewCalculateDeliveryQuery(origin, destination,
//	    pricing.Express, pricing.Fragile, pricing.WeightOneToTwoKg)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCalculateDeliveryQueryHandler(tariffProvider)
//	quote, err := handler.Handle(ctx, query)
type CalculateDeliveryQuery struct {
	spec pricing.ShipmentSpec

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryQuery creates a quote query from the five shipment
// attributes. Unknown tiers, types, and bands are rejected here; the sets
// are closed.
func NewCalculateDeliveryQuery(
	origin kernel.CitySlug,
	destination kernel.CitySlug,
	deliveryType pricing.SpeedTier,
	productType pricing.PackageType,
	totalWeight pricing.WeightBand,
) (CalculateDeliveryQuery, error) {
	spec, err := pricing.NewShipmentSpec(origin, destination, deliveryType, productType, totalWeight)
	if err != nil {
		return CalculateDeliveryQuery{}, err
	}

	return CalculateDeliveryQuery{
		spec:  spec,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateDeliveryQueryIsNotConstructed if validation fails.
func (q CalculateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDeliveryQueryIsNotConstructed)
}

// Spec returns the validated shipment attributes.
func (q CalculateDeliveryQuery) Spec() pricing.ShipmentSpec {
	return q.spec
}

// QuoteResponse is the price breakdown of one quote, in whole currency
// units.
type QuoteResponse struct {
	BaseRate              int
	DistanceCost          int
	SpeedSurcharge        int
	WeightCharge          int
	HandlingFee           int
	ServiceTax            int
	Total                 int
	EstimatedDeliveryTime string
}
