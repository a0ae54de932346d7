package api

import (
	"context"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// EventsClient talks to the /events endpoints.
type EventsClient struct {
	c *Client
}

// List fetches all published events.
func (e *EventsClient) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := e.c.get(ctx, "/events", "list events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID fetches a single event.
func (e *EventsClient) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, apperrors.InvalidInput("event id is required")
	}

	var event domain.Event
	if err := e.c.get(ctx, "/events/"+eventID, "get event", &event); err != nil {
		return nil, err
	}
	return &event, nil
}
