package pricing

import (
	"errors"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/guard"
)

// ErrShipmentSpecIsNotConstructed is returned when a ShipmentSpec instance was
// not created through the NewShipmentSpec factory method.
var ErrShipmentSpecIsNotConstructed = errors.New(
	"ShipmentSpec must be created via NewShipmentSpec constructor",
)

// ShipmentSpec is the five-field descriptor of a prospective shipment:
// where it goes, how fast, what it contains, and how much it weighs.
// All fields are mandatory and validated at construction, so a constructed
// spec can be priced without re-validation.
type ShipmentSpec struct { //nolint:recvcheck //using for validation
	origin      kernel.CitySlug
	destination kernel.CitySlug
	speedTier   SpeedTier
	packageType PackageType
	weightBand  WeightBand

	guard guard.ConstructorGuard
}

// NewShipmentSpec creates a validated shipment descriptor.
// Every field is checked against its value object or closed enumeration;
// all violations are reported together via errors.Join.
func NewShipmentSpec(
	origin kernel.CitySlug,
	destination kernel.CitySlug,
	speedTier SpeedTier,
	packageType PackageType,
	weightBand WeightBand,
) (ShipmentSpec, error) {
	spec := ShipmentSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(destination),
		spec.setSpeedTier(speedTier),
		spec.setPackageType(packageType),
		spec.setWeightBand(weightBand),
	); err != nil {
		return ShipmentSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
// Returns ErrShipmentSpecIsNotConstructed for a zero value.
func (s ShipmentSpec) Validate() error {
	return s.guard.Validate(ErrShipmentSpecIsNotConstructed)
}

// Origin returns the origin city.
func (s ShipmentSpec) Origin() kernel.CitySlug {
	return s.origin
}

// Destination returns the destination city.
func (s ShipmentSpec) Destination() kernel.CitySlug {
	return s.destination
}

// SpeedTier returns the delivery speed class.
func (s ShipmentSpec) SpeedTier() SpeedTier {
	return s.speedTier
}

// PackageType returns the handling category.
func (s ShipmentSpec) PackageType() PackageType {
	return s.packageType
}

// WeightBand returns the bucketed weight range.
func (s ShipmentSpec) WeightBand() WeightBand {
	return s.weightBand
}

func (s *ShipmentSpec) setOrigin(origin kernel.CitySlug) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *ShipmentSpec) setDestination(destination kernel.CitySlug) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *ShipmentSpec) setSpeedTier(tier SpeedTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	s.speedTier = tier
	return nil
}

func (s *ShipmentSpec) setPackageType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	s.packageType = packageType
	return nil
}

func (s *ShipmentSpec) setWeightBand(band WeightBand) error {
	if err := band.Validate(); err != nil {
		return err
	}
	s.weightBand = band
	return nil
}
