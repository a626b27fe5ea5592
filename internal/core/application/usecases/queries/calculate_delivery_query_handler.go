package queries

import (
	"context"

	"genzdeliver/internal/core/domain/services"
	"genzdeliver/internal/core/ports"
)

// CalculateDeliveryQueryHandler produces price quotes from the current
// tariff snapshot. It touches no storage; two identical queries against the
// same snapshot yield identical quotes.
type CalculateDeliveryQueryHandler struct {
	tariffs   ports.TariffProvider
	estimator services.PriceEstimator
}

// NewCalculateDeliveryQueryHandler creates a handler for quote calculation.
func NewCalculateDeliveryQueryHandler(tariffs ports.TariffProvider) CalculateDeliveryQueryHandler {
	return CalculateDeliveryQueryHandler{
		tariffs:   tariffs,
		estimator: services.NewPriceEstimator(),
	}
}

// Handle executes the quote calculation against the current tariff snapshot.
func (h CalculateDeliveryQueryHandler) Handle(
	_ context.Context,
	query CalculateDeliveryQuery,
) (QuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteResponse{}, err
	}

	quote, err := h.estimator.Estimate(h.tariffs.Current(), query.Spec())
	if err != nil {
		return QuoteResponse{}, err
	}

	return QuoteResponse{
		BaseRate:              quote.BaseRate,
		DistanceCost:          quote.DistanceCost,
		SpeedSurcharge:        quote.SpeedSurcharge,
		WeightCharge:          quote.WeightCharge,
		HandlingFee:           quote.HandlingFee,
		ServiceTax:            quote.ServiceTax,
		Total:                 quote.Total,
		EstimatedDeliveryTime: quote.EstimatedDeliveryTime,
	}, nil
}
