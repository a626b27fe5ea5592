package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/application/usecases/commands"
	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/pkg/errs"
)

func validCreateOrderParams() commands.CreateOrderCommandParams {
	return commands.CreateOrderCommandParams{
		RecipientName:    "Rahim Uddin",
		RecipientPhone:   "01711111111",
		RecipientAddress: "House 12, Road 5, Dhanmondi",
		DeliveryArea:     "dhanmondi",
		AmountToCollect:  1500,
		DeliveryType:     pricing.Standard,
		ProductType:      pricing.Parcel,
		TotalWeight:      pricing.WeightHalfToOneKg,
		Quantity:         1,
		ItemDescription:  "Two paperback books",
		CreatedBy:        "merchant-7",
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Rahim Uddin", cmd.Params().RecipientName)
}

func TestNewCreateOrderCommand_ReportsAllMissingFields(t *testing.T) {
	params := validCreateOrderParams()
	params.RecipientName = ""
	params.RecipientPhone = ""
	params.DeliveryArea = ""

	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)

	var missingErr *errs.MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"recipientName", "recipientPhone", "deliveryArea"}, missingErr.Fields)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*commands.CreateOrderCommandParams)
	}{
		{name: "unknown delivery type", mutate: func(p *commands.CreateOrderCommandParams) {
			p.DeliveryType = pricing.SpeedTierUnknown
		}},
		{name: "unknown product type", mutate: func(p *commands.CreateOrderCommandParams) {
			p.ProductType = pricing.PackageTypeUnknown
		}},
		{name: "unknown weight band", mutate: func(p *commands.CreateOrderCommandParams) {
			p.TotalWeight = pricing.WeightBandUnknown
		}},
		{name: "zero quantity", mutate: func(p *commands.CreateOrderCommandParams) { p.Quantity = 0 }},
		{name: "negative amount", mutate: func(p *commands.CreateOrderCommandParams) { p.AmountToCollect = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateOrderParams()
			tt.mutate(&params)

			_, err := commands.NewCreateOrderCommand(params)
			assert.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
