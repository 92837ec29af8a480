package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchly/lunchly-backend/internal/models"
)

// mockCustomerRepository for testing. It holds a reference to the
// reservation mock so the join-based ranking can be simulated.
type mockCustomerRepository struct {
	customers       []*models.Customer
	reservationRepo *mockReservationRepository
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = int64(len(m.customers) + 1)
	stored := *customer
	m.customers = append(m.customers, &stored)
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
}

func (m *mockCustomerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, error) {
	matched := []*models.Customer{}

	switch filter.Mode {
	case models.SearchModeFullName:
		for _, c := range m.customers {
			if containsFold(c.FullName(), filter.Term) {
				matched = append(matched, c)
			}
		}

	default:
		first, last := filter.Tokens()
		for _, c := range m.customers {
			if containsFold(c.FirstName, first) && containsFold(c.LastName, last) {
				matched = append(matched, c)
			}
		}
		sort.Slice(matched, func(i, j int) bool {
			if matched[i].LastName != matched[j].LastName {
				return matched[i].LastName < matched[j].LastName
			}
			return matched[i].FirstName < matched[j].FirstName
		})
	}

	return matched, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	for i, c := range m.customers {
		if c.ID == customer.ID {
			stored := *customer
			m.customers[i] = &stored
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", customer.ID))
}

func (m *mockCustomerRepository) TopByReservations(ctx context.Context, limit int) ([]*models.CustomerWithStats, error) {
	ranked := []*models.CustomerWithStats{}
	for _, c := range m.customers {
		var n int64
		for _, r := range m.reservationRepo.reservations {
			if r.CustomerID == c.ID {
				n++
			}
		}
		// Inner join semantics: zero-reservation customers are excluded.
		if n > 0 {
			ranked = append(ranked, &models.CustomerWithStats{Customer: *c, ReservationCount: n})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].ReservationCount > ranked[j].ReservationCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// mockReservationRepository for testing
type mockReservationRepository struct {
	reservations []*models.Reservation
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.ID = int64(len(m.reservations) + 1)
	stored := *reservation
	m.reservations = append(m.reservations, &stored)
	return nil
}

func (m *mockReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	for _, r := range m.reservations {
		if r.ID == id {
			found := *r
			return &found, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("reservation with ID %d not found", id))
}

func (m *mockReservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	matched := []*models.Reservation{}
	for _, r := range m.reservations {
		if r.CustomerID == customerID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (m *mockReservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	for i, r := range m.reservations {
		if r.ID == reservation.ID {
			stored := *reservation
			m.reservations[i] = &stored
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("reservation with ID %d not found", reservation.ID))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestCustomerService() (CustomerService, *mockCustomerRepository, *mockReservationRepository) {
	reservationRepo := &mockReservationRepository{}
	customerRepo := &mockCustomerRepository{reservationRepo: reservationRepo}
	return NewCustomerService(customerRepo, reservationRepo, testLogger()), customerRepo, reservationRepo
}

func timeFor(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func mustCustomer(t *testing.T, firstName, lastName string) *models.Customer {
	t.Helper()
	c, err := models.NewCustomer(firstName, lastName, "555-0100", "")
	require.NoError(t, err)
	return c
}

func TestCustomerService_Save_InsertAssignsID(t *testing.T) {
	svc, _, _ := newTestCustomerService()
	ctx := context.Background()

	customer, err := models.NewCustomer("Alice", "Smith", "555-0100", "regular")
	require.NoError(t, err)
	require.Zero(t, customer.ID)

	saved, err := svc.Save(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	// A subsequent get returns an identical record.
	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "regular", got.Notes)
}

func TestCustomerService_Save_UpdateOverwrites(t *testing.T) {
	svc, _, _ := newTestCustomerService()
	ctx := context.Background()

	customer := mustCustomer(t, "Alice", "Smith")
	saved, err := svc.Save(ctx, customer)
	require.NoError(t, err)

	saved.FirstName = "Alicia"
	saved.Phone = "555-0199"
	saved.SetNotes("")

	again, err := svc.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "", got.Notes)
}

func TestCustomerService_Save_RejectsInvalid(t *testing.T) {
	svc, customerRepo, _ := newTestCustomerService()

	_, err := svc.Save(context.Background(), &models.Customer{FirstName: "Alice", LastName: "Smith"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, customerRepo.customers)
}

func TestCustomerService_Get_NotFound(t *testing.T) {
	svc, _, _ := newTestCustomerService()

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCustomerService_List_Search(t *testing.T) {
	svc, _, _ := newTestCustomerService()
	ctx := context.Background()

	for _, c := range []*models.Customer{
		mustCustomer(t, "Alice", "Smith"),
		mustCustomer(t, "Bob", "Smith"),
		mustCustomer(t, "Alice", "Jones"),
	} {
		_, err := svc.Save(ctx, c)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter models.CustomerFilter
		want   []string
	}{
		{
			name:   "no term lists all ordered by last then first name",
			filter: models.CustomerFilter{},
			want:   []string{"Alice Jones", "Alice Smith", "Bob Smith"},
		},
		{
			name:   "two tokens match first and last name",
			filter: models.CustomerFilter{Term: "Alice Smith"},
			want:   []string{"Alice Smith"},
		},
		{
			name:   "single token matches first name only",
			filter: models.CustomerFilter{Term: "Alice"},
			want:   []string{"Alice Jones", "Alice Smith"},
		},
		{
			name:   "full-name mode matches across both columns",
			filter: models.CustomerFilter{Term: "Smith", Mode: models.SearchModeFullName},
			want:   []string{"Alice Smith", "Bob Smith"},
		},
		{
			name:   "full-name mode spans the space",
			filter: models.CustomerFilter{Term: "ce Smi", Mode: models.SearchModeFullName},
			want:   []string{"Alice Smith"},
		},
		{
			name:   "no matches is empty, not an error",
			filter: models.CustomerFilter{Term: "Zelda"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)

			names := []string{}
			for _, c := range customers {
				names = append(names, c.FullName())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCustomerService_TopTen(t *testing.T) {
	svc, _, reservationRepo := newTestCustomerService()
	ctx := context.Background()

	alice, err := svc.Save(ctx, mustCustomer(t, "Alice", "Smith"))
	require.NoError(t, err)
	bob, err := svc.Save(ctx, mustCustomer(t, "Bob", "Jones"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, mustCustomer(t, "Carol", "Quiet"))
	require.NoError(t, err)

	addReservations := func(customerID int64, n int) {
		for i := 0; i < n; i++ {
			r, err := models.NewReservation(customerID, 2, timeFor(t, "2024-04-05T13:30:00Z"), "")
			require.NoError(t, err)
			require.NoError(t, reservationRepo.Create(ctx, r))
		}
	}
	addReservations(alice.ID, 2)
	addReservations(bob.ID, 5)

	top, err := svc.TopTen(ctx)
	require.NoError(t, err)

	// Carol has no reservations and must not appear, even though she
	// exists in the store.
	require.Len(t, top, 2)
	assert.Equal(t, "Bob Jones", top[0].FullName())
	assert.Equal(t, int64(5), top[0].ReservationCount)
	assert.Equal(t, "Alice Smith", top[1].FullName())
	assert.Equal(t, int64(2), top[1].ReservationCount)
}

func TestCustomerService_Reservations(t *testing.T) {
	svc, _, reservationRepo := newTestCustomerService()
	ctx := context.Background()

	alice, err := svc.Save(ctx, mustCustomer(t, "Alice", "Smith"))
	require.NoError(t, err)

	// Empty before any reservations exist.
	reservations, err := svc.Reservations(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, reservations)

	r, err := models.NewReservation(alice.ID, 4, timeFor(t, "2024-04-05T13:30:00Z"), "birthday")
	require.NoError(t, err)
	require.NoError(t, reservationRepo.Create(ctx, r))

	reservations, err = svc.Reservations(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, alice.ID, reservations[0].CustomerID)
	assert.Equal(t, 4, reservations[0].NumGuests)
}
