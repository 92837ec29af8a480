package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lunchly/lunchly-backend/internal/models"
	"github.com/lunchly/lunchly-backend/internal/service"
)

// CustomerHandler handles customer HTTP requests. It performs no field
// validation of its own: it decodes, calls the customer manager, and maps
// errors to responses.
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// ListCustomers handles GET /customers?search=&mode=
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.CustomerFilter{
		Term: query.Get("search"),
		Mode: models.SearchModeNameTokens,
	}
	if query.Get("mode") == "fullname" {
		filter.Mode = models.SearchModeFullName
	}

	customers, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewCustomerResponses(customers))
}

// TopCustomers handles GET /customers/top
func (h *CustomerHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.TopTen(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewTopCustomerResponses(customers))
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	customer, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewCustomerResponse(customer))
}

// ListCustomerReservations handles GET /customers/{id}/reservations
func (h *CustomerHandler) ListCustomerReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	// The customer must exist; their reservation list may be empty.
	if _, err := h.customerService.Get(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}

	reservations, err := h.customerService.Reservations(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewReservationResponses(reservations))
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	customer, err := models.NewCustomer(input.FirstName, input.LastName, input.Phone, input.Notes)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	customer, err = h.customerService.Save(r.Context(), customer)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, service.NewCustomerResponse(customer))
}

// UpdateCustomer handles PUT /customers/{id}. The update overwrites all
// mutable fields of the stored row.
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	var input service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	customer, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Phone = input.Phone
	customer.SetNotes(input.Notes)

	customer, err = h.customerService.Save(r.Context(), customer)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewCustomerResponse(customer))
}

// pathID extracts the numeric {id} route parameter
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
