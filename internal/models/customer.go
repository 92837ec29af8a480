package models

import "strings"

// Customer represents a restaurant customer.
//
// An ID of 0 means the customer has not been saved yet; the store assigns
// the identity on first insert and it never changes afterwards.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// NewCustomer builds a customer from raw field values, normalizing notes.
// Required-field validation happens here rather than at the transport
// boundary, so no construction path yields an invalid entity.
func NewCustomer(firstName, lastName, phone, notes string) (*Customer, error) {
	c := &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Notes:     NormalizeNotes(notes),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate performs basic validation on customer data
func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return ErrValidationWithMsg("first_name is required")
	}
	if c.LastName == "" {
		return ErrValidationWithMsg("last_name is required")
	}
	if c.Phone == "" {
		return ErrValidationWithMsg("phone is required")
	}
	return nil
}

// FullName returns the customer's display name, derived on read.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// SetNotes stores the given text, normalizing empty input to "".
func (c *Customer) SetNotes(text string) {
	c.Notes = NormalizeNotes(text)
}

// NormalizeNotes maps absent or blank notes to the empty string. Notes are
// never null in the store.
func NormalizeNotes(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

// SearchMode selects the matching semantics for customer search. The two
// modes exist side by side and callers must choose deliberately.
type SearchMode int

const (
	// SearchModeNameTokens splits the term on a single space: the first
	// token substring-matches first_name, the second last_name. A missing
	// second token matches every last name. Results order by
	// (last_name, first_name) ascending.
	SearchModeNameTokens SearchMode = iota

	// SearchModeFullName substring-matches the whole term against
	// "first_name last_name", handling queries that split across the two
	// columns. Store-default order.
	SearchModeFullName
)

// CustomerFilter holds search options for listing customers
type CustomerFilter struct {
	Term string
	Mode SearchMode
}

// Tokens returns the first-name and last-name search tokens for
// SearchModeNameTokens. An empty term behaves like a single space, so both
// tokens are empty and match everything.
func (f CustomerFilter) Tokens() (first, last string) {
	term := f.Term
	if term == "" {
		term = " "
	}
	parts := strings.Split(term, " ")
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// CustomerWithStats combines a customer with their reservation count, as
// produced by the top-customers ranking.
type CustomerWithStats struct {
	Customer
	ReservationCount int64 `json:"reservation_count"`
}
