package dto

import (
	"testing"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadCatalogRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoadCatalogRequest
		wantField string
	}{
		{
			name: "valid with product id zero",
			request: LoadCatalogRequest{Products: []CatalogProduct{
				{ProductID: intPtr(0), ProductName: "RBC A+ Adult", MassG: 700},
			}},
		},
		{name: "empty", request: LoadCatalogRequest{}, wantField: "products"},
		{
			name:      "missing id",
			request:   LoadCatalogRequest{Products: []CatalogProduct{{ProductName: "x", MassG: 1}}},
			wantField: "products[0].product_id",
		},
		{
			name:      "negative id",
			request:   LoadCatalogRequest{Products: []CatalogProduct{{ProductID: intPtr(-1), ProductName: "x", MassG: 1}}},
			wantField: "products[0].product_id",
		},
		{
			name: "missing name",
			request: LoadCatalogRequest{Products: []CatalogProduct{
				{ProductID: intPtr(0), ProductName: "a", MassG: 1},
				{ProductID: intPtr(1), MassG: 1},
			}},
			wantField: "products[1].product_name",
		},
		{
			name:      "zero mass",
			request:   LoadCatalogRequest{Products: []CatalogProduct{{ProductID: intPtr(3), ProductName: "x"}}},
			wantField: "products[0].mass_g",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoadCatalogRequest_ToEntries(t *testing.T) {
	req := LoadCatalogRequest{Products: []CatalogProduct{
		{ProductID: intPtr(0), ProductName: "RBC A+ Adult", MassG: 700},
		{ProductID: intPtr(10), ProductName: "FFP A+", MassG: 300},
	}}

	assert.Equal(t, []model.CatalogEntry{
		{ProductID: 0, ProductName: "RBC A+ Adult", MassG: 700},
		{ProductID: 10, ProductName: "FFP A+", MassG: 300},
	}, req.ToEntries())
}

func TestRestockRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RestockRequest
		wantField string
	}{
		{name: "valid", request: RestockRequest{Restock: []ProductQuantity{{ProductID: intPtr(0), Quantity: 30}}}},
		{name: "empty", request: RestockRequest{}, wantField: "restock"},
		{
			name:      "zero quantity",
			request:   RestockRequest{Restock: []ProductQuantity{{ProductID: intPtr(0), Quantity: 0}}},
			wantField: "restock[0].quantity",
		},
		{
			name: "negative quantity in second item",
			request: RestockRequest{Restock: []ProductQuantity{
				{ProductID: intPtr(0), Quantity: 1},
				{ProductID: intPtr(1), Quantity: -3},
			}},
			wantField: "restock[1].quantity",
		},
		{
			name:      "quantity above line maximum",
			request:   RestockRequest{Restock: []ProductQuantity{{ProductID: intPtr(0), Quantity: model.MaxLineQuantity + 1}}},
			wantField: "restock[0].quantity",
		},
		{
			name:      "missing product",
			request:   RestockRequest{Restock: []ProductQuantity{{Quantity: 1}}},
			wantField: "restock[0].product_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRestockRequest_ToDeltas(t *testing.T) {
	req := RestockRequest{Restock: []ProductQuantity{{ProductID: intPtr(42), Quantity: 5}}}

	assert.Equal(t, []model.ProductDelta{{ProductID: 42, Quantity: 5}}, req.ToDeltas())
}

func TestSubmitOrderRequest(t *testing.T) {
	t.Run("missing order id", func(t *testing.T) {
		req := SubmitOrderRequest{Requested: []ProductQuantity{{ProductID: intPtr(0), Quantity: 1}}}
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "order_id", verr.Field)
	})

	t.Run("empty lines", func(t *testing.T) {
		req := SubmitOrderRequest{OrderID: intPtr(1)}
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "requested", verr.Field)
	})

	t.Run("quantity above line maximum", func(t *testing.T) {
		req := SubmitOrderRequest{OrderID: intPtr(1), Requested: []ProductQuantity{{ProductID: intPtr(0), Quantity: model.MaxLineQuantity + 1}}}
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "requested[0].quantity", verr.Field)
	})

	t.Run("converts to order", func(t *testing.T) {
		req := SubmitOrderRequest{
			OrderID: intPtr(123),
			Requested: []ProductQuantity{
				{ProductID: intPtr(0), Quantity: 2},
				{ProductID: intPtr(10), Quantity: 4},
			},
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, model.Order{
			OrderID:   123,
			Requested: []model.OrderLine{{ProductID: 0, Quantity: 2}, {ProductID: 10, Quantity: 4}},
		}, req.ToOrder())
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "order_id", Message: "is required"}
	assert.Equal(t, "order_id: is required", err.Error())
}
