// Package app wires services, the pricing scheduler and event subscriptions
// into one application.
package app

import (
	"context"
	"fmt"

	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/eventbus"
)

// setupEventBus registers the application's event handlers.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	bus.Register(domain.EventTypeParcelRegistered, a.handleParcelRegistered)
	bus.Register(domain.EventTypeParcelPriced, a.handleParcelPriced)
}

func (a *App) handleParcelRegistered(ctx context.Context, e eventbus.Event) error {
	var evt domain.ParcelRegistered
	switch v := e.(type) {
	case domain.ParcelRegistered:
		evt = v
	case *domain.ParcelRegistered:
		evt = *v
	default:
		return fmt.Errorf("unexpected event %T for %s", e, domain.EventTypeParcelRegistered)
	}
	a.Deps.Logger.InfoContext(ctx, "Parcel awaiting delivery cost",
		"parcel_id", evt.ParcelID,
		"session_id", evt.SessionID,
		"parcel_type_id", evt.ParcelTypeID,
	)
	return nil
}

func (a *App) handleParcelPriced(ctx context.Context, e eventbus.Event) error {
	var evt domain.ParcelPriced
	switch v := e.(type) {
	case domain.ParcelPriced:
		evt = v
	case *domain.ParcelPriced:
		evt = *v
	default:
		return fmt.Errorf("unexpected event %T for %s", e, domain.EventTypeParcelPriced)
	}
	a.Deps.Logger.InfoContext(ctx, "Parcel priced",
		"parcel_id", evt.ParcelID,
		"session_id", evt.SessionID,
		"delivery_cost", evt.DeliveryCost,
		"rate", evt.Rate,
		"run_id", evt.RunID,
	)
	return nil
}
