package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lunchly/lunchly-backend/internal/models"
	"github.com/lunchly/lunchly-backend/internal/service"
)

// ReservationHandler handles reservation HTTP requests
type ReservationHandler struct {
	reservationService service.ReservationService
	logger             *slog.Logger
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService service.ReservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		logger:             logger,
	}
}

// CreateReservation handles POST /customers/{id}/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	var input service.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	startAt, err := h.reservationService.ParseStartAt(input.StartAt)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	reservation, err := models.NewReservation(customerID, input.NumGuests, startAt, input.Notes)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	reservation, err = h.reservationService.Save(r.Context(), reservation)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, service.NewReservationResponse(reservation))
}

// UpdateReservation handles PUT /reservations/{id}. The update overwrites
// all mutable fields of the stored row.
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var input service.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	reservation, err := h.reservationService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	if err := reservation.SetNumGuests(input.NumGuests); err != nil {
		handleError(w, err, h.logger)
		return
	}

	startAt, err := h.reservationService.ParseStartAt(input.StartAt)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	reservation.SetStartAt(startAt)
	reservation.SetNotes(input.Notes)

	reservation, err = h.reservationService.Save(r.Context(), reservation)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.NewReservationResponse(reservation))
}
