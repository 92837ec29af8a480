package service

import (
	"time"

	"github.com/lunchly/lunchly-backend/internal/models"
)

// CustomerInput represents the fields a caller supplies when creating or
// editing a customer. Field validation lives in the entity, not here.
type CustomerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// ReservationInput represents the fields a caller supplies when creating or
// editing a reservation. StartAt arrives as a raw string and is coerced
// according to the configured strictness.
type ReservationInput struct {
	NumGuests int    `json:"num_guests"`
	StartAt   string `json:"start_at"`
	Notes     string `json:"notes"`
}

// CustomerResponse is the wire shape of a customer, including the derived
// full name.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// NewCustomerResponse builds the wire shape for a customer
func NewCustomerResponse(c *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Phone:     c.Phone,
		Notes:     c.Notes,
	}
}

// NewCustomerResponses builds the wire shape for a customer list
func NewCustomerResponses(customers []*models.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, NewCustomerResponse(c))
	}
	return responses
}

// TopCustomerResponse is the wire shape of a ranked customer
type TopCustomerResponse struct {
	CustomerResponse
	ReservationCount int64 `json:"reservation_count"`
}

// NewTopCustomerResponses builds the wire shape for the ranking
func NewTopCustomerResponses(customers []*models.CustomerWithStats) []*TopCustomerResponse {
	responses := make([]*TopCustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, &TopCustomerResponse{
			CustomerResponse: CustomerResponse{
				ID:        c.ID,
				FirstName: c.FirstName,
				LastName:  c.LastName,
				FullName:  c.FullName(),
				Phone:     c.Phone,
				Notes:     c.Notes,
			},
			ReservationCount: c.ReservationCount,
		})
	}
	return responses
}

// ReservationResponse is the wire shape of a reservation, including the
// long-form rendering of the start time.
type ReservationResponse struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	NumGuests        int       `json:"num_guests"`
	StartAt          time.Time `json:"start_at"`
	FormattedStartAt string    `json:"formatted_start_at"`
	Notes            string    `json:"notes"`
}

// NewReservationResponse builds the wire shape for a reservation
func NewReservationResponse(r *models.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:               r.ID,
		CustomerID:       r.CustomerID,
		NumGuests:        r.NumGuests,
		StartAt:          r.StartAt,
		FormattedStartAt: r.FormattedStartAt(),
		Notes:            r.Notes,
	}
}

// NewReservationResponses builds the wire shape for a reservation list
func NewReservationResponses(reservations []*models.Reservation) []*ReservationResponse {
	responses := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, NewReservationResponse(r))
	}
	return responses
}
