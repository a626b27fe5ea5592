package pricing

// Quote is the price breakdown for a prospective shipment. It is derived on
// every request and never persisted; a booking records only the amount the
// customer accepted, not the breakdown behind it.
//
// All figures are whole currency units. Total is the only rounded figure:
// subtotal plus tax, rounded to the nearest multiple of 5.
type Quote struct {
	// BaseRate is the speed tier's base delivery rate.
	BaseRate int

	// DistanceCost is the route table's rate component.
	// Zero for same-city shipments.
	DistanceCost int

	// SpeedSurcharge is the speed tier's additional surcharge.
	// Zero for the standard tier.
	SpeedSurcharge int

	// WeightCharge is the weight band's surcharge.
	WeightCharge int

	// HandlingFee is the package type's handling fee.
	HandlingFee int

	// ServiceTax is the tax on the pre-tax subtotal, rounded half-up.
	ServiceTax int

	// Total is the final price: subtotal plus tax, rounded half-up to the
	// nearest multiple of 5.
	Total int

	// EstimatedDeliveryTime is the speed tier's human-readable time estimate,
	// for example "2-3 business days".
	EstimatedDeliveryTime string
}

// Subtotal returns the pre-tax sum of the five additive components.
func (q Quote) Subtotal() int {
	return q.BaseRate + q.DistanceCost + q.SpeedSurcharge + q.WeightCharge + q.HandlingFee
}
