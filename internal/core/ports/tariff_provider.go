package ports

import (
	"genzdeliver/internal/core/domain/model/pricing"
)

// TariffProvider hands out the current pricing tariff snapshot.
// Implementations must be safe for concurrent readers; a snapshot, once
// returned, never changes underneath the caller.
type TariffProvider interface {
	Current() pricing.Tariff
}
