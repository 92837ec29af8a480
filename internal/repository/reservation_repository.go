package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lunchly/lunchly-backend/internal/models"
)

// ReservationRepository defines the interface for reservation data access
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
}

// reservationRepository implements ReservationRepository using PostgreSQL
type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create inserts a new reservation and assigns the store-generated identity
func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	query := `
		INSERT INTO reservations (customer_id, num_guests, start_at, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		reservation.CustomerID,
		reservation.NumGuests,
		reservation.StartAt,
		reservation.Notes,
	).Scan(&reservation.ID)

	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// GetByID retrieves a reservation by ID
func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `
		SELECT id, customer_id, num_guests, start_at, notes
		FROM reservations
		WHERE id = $1`

	reservation := &models.Reservation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.CustomerID,
		&reservation.NumGuests,
		&reservation.StartAt,
		&reservation.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("reservation with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

// ListByCustomer retrieves all reservations for a customer in store order.
// Zero matches is an empty slice, never an error.
func (r *reservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	query := `
		SELECT id, customer_id, num_guests, start_at, notes
		FROM reservations
		WHERE customer_id = $1`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []*models.Reservation{}
	for rows.Next() {
		reservation := &models.Reservation{}
		err := rows.Scan(
			&reservation.ID,
			&reservation.CustomerID,
			&reservation.NumGuests,
			&reservation.StartAt,
			&reservation.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}

// Update overwrites all mutable fields of an existing reservation
func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	query := `
		UPDATE reservations
		SET num_guests = $1, start_at = $2, notes = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(
		ctx,
		query,
		reservation.NumGuests,
		reservation.StartAt,
		reservation.Notes,
		reservation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("reservation with ID %d not found", reservation.ID))
	}

	return nil
}
