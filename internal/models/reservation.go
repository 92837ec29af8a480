package models

import (
	"fmt"
	"time"
)

// startAtLayouts are the accepted input formats for reservation times,
// most specific first.
var startAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Reservation represents a booking for a party, tied to one customer by
// customer_id. Reservations never hold a live customer reference; lookups
// go back through the store.
type Reservation struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	NumGuests  int       `json:"num_guests"`
	StartAt    time.Time `json:"start_at"`
	Notes      string    `json:"notes"`
}

// NewReservation builds a reservation from raw field values. The guest-count
// invariant is enforced here, so an invalid reservation can never be
// constructed without the caller observing the failure.
func NewReservation(customerID int64, numGuests int, startAt time.Time, notes string) (*Reservation, error) {
	r := &Reservation{
		CustomerID: customerID,
		StartAt:    startAt,
		Notes:      NormalizeNotes(notes),
	}
	if err := r.SetNumGuests(numGuests); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate performs basic validation on reservation data
func (r *Reservation) Validate() error {
	if r.CustomerID <= 0 {
		return ErrValidationWithMsg("customer_id is required")
	}
	if r.NumGuests < 1 {
		return ErrValidationWithMsg("must have at least one guest")
	}
	return nil
}

// SetNumGuests assigns the party size, rejecting anything below one guest
// before the value can reach the store.
func (r *Reservation) SetNumGuests(guests int) error {
	if guests < 1 {
		return ErrValidationWithMsg("must have at least one guest")
	}
	r.NumGuests = guests
	return nil
}

// SetNotes stores the given text, normalizing empty input to "".
func (r *Reservation) SetNotes(text string) {
	r.Notes = NormalizeNotes(text)
}

// SetStartAt assigns the reservation time.
func (r *Reservation) SetStartAt(t time.Time) {
	r.StartAt = t
}

// ParseStartAt coerces a raw timestamp string into a reservation time.
//
// With strict set, unparseable input is a validation error. Without it,
// bad input coerces to the zero time, which renders as "invalid date" --
// the historical behavior.
func ParseStartAt(value string, strict bool) (time.Time, error) {
	for _, layout := range startAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if strict {
		return time.Time{}, ErrValidationWithMsg(fmt.Sprintf("unparseable start_at: %q", value))
	}
	return time.Time{}, nil
}

// FormattedStartAt renders the reservation time in the long form shown to
// staff, e.g. "April 5th 2024, 1:30 pm".
func (r *Reservation) FormattedStartAt() string {
	if r.StartAt.IsZero() {
		return "invalid date"
	}
	return fmt.Sprintf("%s %s %d, %s",
		r.StartAt.Format("January"),
		ordinal(r.StartAt.Day()),
		r.StartAt.Year(),
		r.StartAt.Format("3:04 pm"),
	)
}

// ordinal renders a day of month as "1st", "2nd", "11th", "22nd", etc.
func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
