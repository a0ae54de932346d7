package api

import (
	"context"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// MenusClient talks to the /menus endpoints.
type MenusClient struct {
	c *Client
}

// ByEvent fetches the menu items offered at an event, across all vendors.
func (m *MenusClient) ByEvent(ctx context.Context, eventID string) ([]domain.MenuItem, error) {
	if eventID == "" {
		return nil, apperrors.InvalidInput("event id is required")
	}

	var items []domain.MenuItem
	if err := m.c.get(ctx, "/menus/event/"+eventID, "list event menus", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single menu item.
func (m *MenusClient) GetByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	if menuItemID == "" {
		return nil, apperrors.InvalidInput("menu item id is required")
	}

	var item domain.MenuItem
	if err := m.c.get(ctx, "/menus/"+menuItemID, "get menu item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}
