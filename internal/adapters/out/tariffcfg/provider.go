// Package tariffcfg loads the pricing rate card from a YAML tariff file and
// serves it as immutable snapshots. The file carries overrides only: anything
// it leaves out keeps the built-in production value from pricing.DefaultTariff.
//
// The provider is safe for concurrent readers. Refresh swaps in a complete
// new snapshot; quotes in flight keep the tariff they started with.
package tariffcfg

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/viper"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/pricing"
)

// fileTariff mirrors the tariff file layout with wire-form enumeration keys.
type fileTariff struct {
	BaseRates       map[string]int    `mapstructure:"baseRates"`
	SpeedSurcharges map[string]int    `mapstructure:"speedSurcharges"`
	DeliveryTimes   map[string]string `mapstructure:"deliveryTimes"`
	WeightCharges   map[string]int    `mapstructure:"weightCharges"`
	HandlingFees    map[string]int    `mapstructure:"handlingFees"`
	Routes          []fileRoute       `mapstructure:"routes"`
	FallbackRoute   *fileRouteRate    `mapstructure:"fallbackRoute"`
	TaxRatePercent  *int              `mapstructure:"taxRatePercent"`
}

type fileRoute struct {
	Origin      string `mapstructure:"origin"`
	Destination string `mapstructure:"destination"`
	DistanceKm  int    `mapstructure:"distanceKm"`
	Rate        int    `mapstructure:"rate"`
}

type fileRouteRate struct {
	DistanceKm int `mapstructure:"distanceKm"`
	Rate       int `mapstructure:"rate"`
}

// Provider serves pricing tariff snapshots loaded from a tariff file.
// An empty path means the built-in rate card only.
type Provider struct {
	path    string
	current atomic.Pointer[pricing.Tariff]
}

// NewProvider loads the tariff file at path merged over the built-in rate
// card. A load failure at construction time is an error; later Refresh
// failures leave the current snapshot in place.
func NewProvider(path string) (*Provider, error) {
	provider := &Provider{path: path}
	if err := provider.Refresh(); err != nil {
		return nil, err
	}
	return provider, nil
}

// Current returns the active tariff snapshot.
func (p *Provider) Current() pricing.Tariff {
	return *p.current.Load()
}

// Refresh reloads the tariff file and swaps in the new snapshot. On failure
// the previous snapshot, when one exists, stays active and the error is
// returned for logging.
func (p *Provider) Refresh() error {
	tariff, err := load(p.path)
	if err != nil {
		return err
	}

	p.current.Store(&tariff)
	return nil
}

// load reads the tariff file and merges its overrides over the defaults.
func load(path string) (pricing.Tariff, error) {
	tariff := pricing.DefaultTariff()
	if path == "" {
		return tariff, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return pricing.Tariff{}, fmt.Errorf("read tariff file %s: %w", path, err)
	}

	var overrides fileTariff
	if err := v.Unmarshal(&overrides); err != nil {
		return pricing.Tariff{}, fmt.Errorf("parse tariff file %s: %w", path, err)
	}

	if err := merge(&tariff, overrides); err != nil {
		return pricing.Tariff{}, fmt.Errorf("apply tariff file %s: %w", path, err)
	}

	if err := tariff.Validate(); err != nil {
		return pricing.Tariff{}, fmt.Errorf("validate tariff file %s: %w", path, err)
	}

	return tariff, nil
}

func merge(tariff *pricing.Tariff, overrides fileTariff) error {
	for key, rate := range overrides.BaseRates {
		tier, err := pricing.SpeedTierFromString(key)
		if err != nil {
			return err
		}
		tariff.BaseRates[tier] = rate
	}

	for key, surcharge := range overrides.SpeedSurcharges {
		tier, err := pricing.SpeedTierFromString(key)
		if err != nil {
			return err
		}
		tariff.SpeedSurcharges[tier] = surcharge
	}

	for key, estimate := range overrides.DeliveryTimes {
		tier, err := pricing.SpeedTierFromString(key)
		if err != nil {
			return err
		}
		tariff.DeliveryTimes[tier] = estimate
	}

	for key, charge := range overrides.WeightCharges {
		band, err := pricing.WeightBandFromString(key)
		if err != nil {
			return err
		}
		tariff.WeightCharges[band] = charge
	}

	for key, fee := range overrides.HandlingFees {
		packageType, err := pricing.PackageTypeFromString(key)
		if err != nil {
			return err
		}
		tariff.HandlingFees[packageType] = fee
	}

	for _, r := range overrides.Routes {
		origin, err := kernel.NewCitySlug(r.Origin)
		if err != nil {
			return err
		}
		destination, err := kernel.NewCitySlug(r.Destination)
		if err != nil {
			return err
		}
		tariff.Routes[pricing.RouteKey{Origin: origin, Destination: destination}] =
			pricing.RouteRate{DistanceKm: r.DistanceKm, Rate: r.Rate}
	}

	if overrides.FallbackRoute != nil {
		tariff.FallbackRoute = pricing.RouteRate{
			DistanceKm: overrides.FallbackRoute.DistanceKm,
			Rate:       overrides.FallbackRoute.Rate,
		}
	}

	if overrides.TaxRatePercent != nil {
		tariff.TaxRatePercent = *overrides.TaxRatePercent
	}

	return nil
}
