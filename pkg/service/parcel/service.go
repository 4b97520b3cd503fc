// Package parcel provides business logic for parcel registration and lookup.
package parcel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/amirasaad/parcels/pkg/repository"
)

// RegisterInput carries the client supplied fields of a new parcel.
type RegisterInput struct {
	Name         string
	Weight       float64
	ContentValue float64
	ParcelTypeID int64
}

// Recorder receives registration metrics.
type Recorder interface {
	RecordParcelRegistered()
}

// Service provides parcel operations scoped to a client session.
type Service struct {
	uow      repository.UnitOfWork
	bus      eventbus.Bus
	recorder Recorder
	now      func() time.Time
	logger   *slog.Logger
}

// New creates a new Service. bus and recorder may be nil.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	recorder Recorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:      uow,
		bus:      bus,
		recorder: recorder,
		now:      time.Now,
		logger:   logger.With("component", "parcel_service"),
	}
}

// Register validates and stores a new unpriced parcel owned by sessionID.
func (s *Service) Register(
	ctx context.Context,
	sessionID string,
	in RegisterInput,
) (view *domain.ParcelView, err error) {
	p, err := domain.NewParcel(sessionID, in.Name, in.Weight, in.ContentValue, in.ParcelTypeID)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		types, err := uow.ParcelTypeRepository()
		if err != nil {
			return err
		}
		pt, err := types.Get(ctx, p.ParcelTypeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrUnknownParcelType)
			}
			return err
		}
		if pt == nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrUnknownParcelType)
		}

		parcels, err := uow.ParcelRepository()
		if err != nil {
			return err
		}
		if err := parcels.Create(ctx, p); err != nil {
			return err
		}
		view = &domain.ParcelView{Parcel: *p, ParcelType: pt.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.RecordParcelRegistered()
	}
	s.logger.Info("Parcel registered",
		"parcel_id", view.ID,
		"session_id", sessionID,
		"parcel_type", view.ParcelType,
	)
	s.emit(ctx, domain.ParcelRegistered{
		ParcelID:     view.ID,
		SessionID:    sessionID,
		ParcelTypeID: view.ParcelTypeID,
		OccurredAt:   s.now(),
	})
	return view, nil
}

// Get returns a parcel owned by sessionID.
func (s *Service) Get(ctx context.Context, sessionID string, id int64) (view *domain.ParcelView, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		parcels, err := uow.ParcelRepository()
		if err != nil {
			return err
		}
		view, err = parcels.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	if !view.OwnedBy(sessionID) {
		return nil, domain.ErrForbidden
	}
	return view, nil
}

// List returns one page of the session's parcels ordered by id.
func (s *Service) List(
	ctx context.Context,
	sessionID string,
	filter repository.ParcelFilter,
) (views []domain.ParcelView, err error) {
	if filter.Page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", domain.ErrValidation)
	}
	if filter.PageSize < 1 || filter.PageSize > repository.MaxPageSize {
		return nil, fmt.Errorf(
			"%w: page_size must be between 1 and %d",
			domain.ErrValidation,
			repository.MaxPageSize,
		)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		parcels, err := uow.ParcelRepository()
		if err != nil {
			return err
		}
		views, err = parcels.ListBySession(ctx, sessionID, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListTypes returns every parcel type ordered by id.
func (s *Service) ListTypes(ctx context.Context) (types []domain.ParcelType, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ParcelTypeRepository()
		if err != nil {
			return err
		}
		types, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}

// SeedTypes inserts the given parcel types when the table is empty and
// reports how many rows were written.
func (s *Service) SeedTypes(ctx context.Context, types []domain.ParcelType) (n int, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ParcelTypeRepository()
		if err != nil {
			return err
		}
		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := repo.CreateMany(ctx, types); err != nil {
			return err
		}
		n = len(types)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Parcel types seeded", "count", n)
	}
	return n, nil
}

func (s *Service) emit(ctx context.Context, evt eventbus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", evt.Type(), "error", err)
	}
}
