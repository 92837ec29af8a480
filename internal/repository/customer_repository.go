package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lunchly/lunchly-backend/internal/models"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	TopByReservations(ctx context.Context, limit int) ([]*models.CustomerWithStats, error)
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer and assigns the store-generated identity
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, phone, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Notes,
	).Scan(&customer.ID)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, phone, notes
		FROM customers
		WHERE id = $1`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// List retrieves customers matching the search filter. Zero matches is an
// empty slice, never an error.
func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error) {
	var (
		query string
		args  []interface{}
	)

	switch filter.Mode {
	case models.SearchModeFullName:
		query = `
			SELECT id, first_name, last_name, phone, notes
			FROM customers
			WHERE concat(first_name, ' ', last_name) ILIKE $1`
		args = []interface{}{"%" + filter.Term + "%"}

	default:
		first, last := filter.Tokens()
		query = `
			SELECT id, first_name, last_name, phone, notes
			FROM customers
			WHERE first_name ILIKE $1 AND last_name ILIKE $2
			ORDER BY last_name, first_name`
		args = []interface{}{"%" + first + "%", "%" + last + "%"}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer := &models.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Phone,
			&customer.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// Update overwrites all mutable fields of an existing customer
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, phone = $3, notes = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Notes,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", customer.ID))
	}

	return nil
}

// TopByReservations ranks customers by their total reservation count,
// descending. The inner join excludes customers with no reservations.
func (r *customerRepository) TopByReservations(ctx context.Context, limit int) ([]*models.CustomerWithStats, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.phone, c.notes,
		       count(r.id) AS reservation_count
		FROM customers c
		JOIN reservations r ON c.id = r.customer_id
		GROUP BY c.id
		ORDER BY reservation_count DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.CustomerWithStats{}
	for rows.Next() {
		customer := &models.CustomerWithStats{}
		err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Phone,
			&customer.Notes,
			&customer.ReservationCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ranked customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranked customers: %w", err)
	}

	return customers, nil
}
