// Package services contains application services for the phonestock client.
// This file defines the inventory service: catalog listing with placeholder
// degradation, validated listing creation, and the sell (delete) flow.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"phonestock/internal/client/api"
	"phonestock/internal/client/catalog"
	"phonestock/internal/client/models"
	"phonestock/internal/common"
)

// InventoryService defines catalog operations for the CLI.
//
// Contract:
//   - List: fetch the full catalog; on a transport failure return the
//     locally generated placeholder set together with the error, so the
//     caller can render something and surface the message.
//   - Add: validate a new listing locally, then create it on the server.
//   - AdjustQuantity: set a listing's stock level through the update endpoint.
//   - Sell: post the sell/delete request and return the confirmation.
//   - Sellouts: fetch the sold-items history.
//   - LowStock: client-side restock view over an already fetched list.
//
// All methods must honor context cancellation/timeouts.
type InventoryService interface {
	List(ctx context.Context) ([]models.Phone, error)
	Get(ctx context.Context, id string) (*models.Phone, error)
	Add(ctx context.Context, phone models.Phone) (*models.Phone, error)
	AdjustQuantity(ctx context.Context, id string, quantity int) (*models.Phone, error)
	Sell(ctx context.Context, req api.SellRequest) (*api.SellConfirmation, error)
	Sellouts(ctx context.Context) ([]models.Phone, error)
	LowStock(items []models.Phone, threshold int) []models.Phone
}

type inventoryService struct {
	client api.Client
}

// NewInventoryService constructs an InventoryService bound to the given API
// client.
func NewInventoryService(client api.Client) InventoryService {
	return &inventoryService{client: client}
}

// List returns the remote catalog. When the server cannot be reached, the
// placeholder set is returned together with the original error: the browse
// view degrades to sample data instead of an empty screen, and the caller
// decides how to surface the message. Server-side errors (non-2xx) are
// returned as-is with no items.
func (s *inventoryService) List(ctx context.Context) ([]models.Phone, error) {
	phones, err := s.client.ListPhones(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			return catalog.Placeholder(), err
		}
		return nil, err
	}
	if len(phones) == 0 {
		return catalog.Placeholder(), nil
	}
	return phones, nil
}

func (s *inventoryService) Get(ctx context.Context, id string) (*models.Phone, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.NewValidationError("id is required")
	}
	return s.client.GetPhone(ctx, id)
}

// Add validates the listing locally — empty name or description, a
// non-positive price, a negative quantity, or no usable tags block the
// submission with no network call — then creates it on the server. Empty tag
// entries are dropped before sending.
func (s *inventoryService) Add(ctx context.Context, phone models.Phone) (*models.Phone, error) {
	phone.Name = strings.TrimSpace(phone.Name)
	phone.Description = strings.TrimSpace(phone.Description)

	tags := make([]string, 0, len(phone.UseIn))
	for _, tag := range phone.UseIn {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	phone.UseIn = tags

	switch {
	case phone.Name == "":
		return nil, common.NewValidationError("name is required")
	case phone.Description == "":
		return nil, common.NewValidationError("description is required")
	case phone.Price <= 0:
		return nil, common.NewValidationError("price must be greater than zero")
	case phone.Quantity < 0:
		return nil, common.NewValidationError("quantity must not be negative")
	case len(phone.UseIn) == 0:
		return nil, common.NewValidationError("at least one use case is required")
	}

	created, err := s.client.CreatePhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	return created, nil
}

// AdjustQuantity fetches the current listing and writes it back with the new
// stock level. Only the quantity changes; the rest of the snapshot is sent
// as-is so the server sees a complete item.
func (s *inventoryService) AdjustQuantity(ctx context.Context, id string, quantity int) (*models.Phone, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.NewValidationError("id is required")
	}
	if quantity < 0 {
		return nil, common.NewValidationError("quantity must not be negative")
	}

	phone, err := s.client.GetPhone(ctx, id)
	if err != nil {
		return nil, err
	}

	phone.Quantity = quantity
	updated, err := s.client.UpdatePhone(ctx, *phone)
	if err != nil {
		return nil, fmt.Errorf("updating listing: %w", err)
	}
	return updated, nil
}

// Sellouts returns the sold-items history. Unlike List there is no
// placeholder fallback; a history view has nothing sensible to fabricate.
func (s *inventoryService) Sellouts(ctx context.Context) ([]models.Phone, error) {
	return s.client.ListSellouts(ctx)
}

// Sell posts the sell request. Any failure surfaces the caught error's
// message; there is no retry.
func (s *inventoryService) Sell(ctx context.Context, req api.SellRequest) (*api.SellConfirmation, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, common.NewValidationError("id is required")
	}
	if req.Quantity <= 0 {
		return nil, common.NewValidationError("quantity must be greater than zero")
	}

	conf, err := s.client.SellPhone(ctx, req)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// LowStock returns the items with quantity strictly below threshold, ordered
// by quantity ascending so the scarcest items come first. The input is not
// mutated.
func (s *inventoryService) LowStock(items []models.Phone, threshold int) []models.Phone {
	low := make([]models.Phone, 0)
	for _, item := range items {
		if item.Quantity < threshold {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Quantity < low[j].Quantity })
	return low
}
