package profile

import (
	"context"
	"net/http"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
)

const vendorStatusPath = "/api/v1/location/vendor-status"

type vendorProfileClient struct {
	*Client
}

// NewVendorProfileClient adapts c to the vendor delivery-settings collaborator.
func NewVendorProfileClient(c *Client) service.VendorProfileClient {
	return &vendorProfileClient{Client: c}
}

func (c *vendorProfileClient) SaveDeliverySettings(ctx context.Context, settings entity.DeliverySettings) error {
	return c.do(ctx, http.MethodPatch, vendorStatusPath, settings, nil)
}
