package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lunchly/lunchly-backend/internal/models"
	"github.com/lunchly/lunchly-backend/internal/repository"
)

// topCustomersLimit bounds the reservation-count ranking.
const topCustomersLimit = 10

// CustomerService handles customer business logic
type CustomerService interface {
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	TopTen(ctx context.Context) ([]*models.CustomerWithStats, error)
	Reservations(ctx context.Context, customerID int64) ([]*models.Reservation, error)
}

type customerService struct {
	customerRepo    repository.CustomerRepository
	reservationRepo repository.ReservationRepository
	logger          *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	reservationRepo repository.ReservationRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List retrieves customers matching the filter's search term and mode
func (s *customerService) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Get retrieves a customer by ID
func (s *customerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// Save persists a customer: insert when the identity is unset, full-row
// update when it is set. The store-assigned ID is written back on insert.
func (s *customerService) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if customer.ID == 0 {
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			s.logger.Error("failed to create customer",
				slog.String("phone", customer.Phone),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}

		s.logger.Info("customer created",
			slog.Int64("customer_id", customer.ID),
			slog.String("phone", customer.Phone),
		)

		return customer, nil
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.logger.Error("failed to update customer",
			slog.Int64("customer_id", customer.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("customer updated",
		slog.Int64("customer_id", customer.ID),
	)

	return customer, nil
}

// TopTen retrieves up to ten customers ranked by reservation count,
// descending. Customers without reservations never appear.
func (s *customerService) TopTen(ctx context.Context) ([]*models.CustomerWithStats, error) {
	customers, err := s.customerRepo.TopByReservations(ctx, topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top customers: %w", err)
	}

	return customers, nil
}

// Reservations retrieves all reservations belonging to a customer by
// re-querying the store.
func (s *customerService) Reservations(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer reservations: %w", err)
	}

	return reservations, nil
}
