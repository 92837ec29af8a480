package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lunchly/lunchly-backend/internal/models"
	"github.com/lunchly/lunchly-backend/internal/repository"
)

// ReservationService handles reservation business logic
type ReservationService interface {
	ListForCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Save(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	ParseStartAt(value string) (time.Time, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	strictDates     bool
	logger          *slog.Logger
}

// NewReservationService creates a new reservation service. strictDates
// controls whether unparseable reservation times are rejected or coerced
// to the "invalid date" sentinel.
func NewReservationService(
	reservationRepo repository.ReservationRepository,
	strictDates bool,
	logger *slog.Logger,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		strictDates:     strictDates,
		logger:          logger,
	}
}

// ListForCustomer retrieves all reservations for a customer
func (s *reservationService) ListForCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return reservations, nil
}

// Get retrieves a reservation by ID
func (s *reservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// Save persists a reservation: insert when the identity is unset, full-row
// update when it is set. The store-assigned ID is written back on insert.
func (s *reservationService) Save(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if err := reservation.Validate(); err != nil {
		return nil, err
	}

	if reservation.ID == 0 {
		if err := s.reservationRepo.Create(ctx, reservation); err != nil {
			s.logger.Error("failed to create reservation",
				slog.Int64("customer_id", reservation.CustomerID),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("failed to create reservation: %w", err)
		}

		s.logger.Info("reservation created",
			slog.Int64("reservation_id", reservation.ID),
			slog.Int64("customer_id", reservation.CustomerID),
			slog.Int("num_guests", reservation.NumGuests),
		)

		return reservation, nil
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		s.logger.Error("failed to update reservation",
			slog.Int64("reservation_id", reservation.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("reservation updated",
		slog.Int64("reservation_id", reservation.ID),
	)

	return reservation, nil
}

// ParseStartAt coerces a raw timestamp honoring the configured strictness
func (s *reservationService) ParseStartAt(value string) (time.Time, error) {
	return models.ParseStartAt(value, s.strictDates)
}
