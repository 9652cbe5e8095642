package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"frontend/internal/booking"
	"frontend/internal/domain/models"
	"frontend/internal/http/middleware"
	"frontend/internal/repositories"
	"frontend/internal/seatmap"
	"frontend/internal/session"
	"frontend/internal/upstream"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleCatalog is what the flow needs from the schedule read model.
// repositories.ScheduleRepository satisfies it; tests plug in a fake.
type ScheduleCatalog interface {
	Search(q repositories.ScheduleQuery) ([]models.Schedule, error)
	GetByID(id int64) (models.Schedule, error)
	ReservedSeats(scheduleID int64) ([]seatmap.SeatID, error)
}

// BookingFlow wires the wizard engine to HTTP: each endpoint is one UI event
// of the multi-step booking flow.
type BookingFlow struct {
	Store     session.Store
	Schedules ScheduleCatalog
	Backend   upstream.Submitter
}

// POST /api/booking/sessions
func (h BookingFlow) Create(c *gin.Context) {
	defaultName := ""
	if uc, ok := middleware.GetUserContext(c); ok {
		defaultName = uc.Name
	}

	w := booking.NewWizard(uuid.NewString(), defaultName)
	if err := h.Store.Save(c.Request.Context(), w); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "session_created", "session_id="+w.ID)
	c.JSON(http.StatusCreated, gin.H{"session": w})
}

// GET /api/booking/sessions/:id
func (h BookingFlow) Get(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": w})
}

type selectScheduleRequest struct {
	ScheduleID int64 `json:"scheduleId"`
}

// POST /api/booking/sessions/:id/schedule
func (h BookingFlow) SelectSchedule(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req selectScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.ScheduleID <= 0 {
		RespondError(c, http.StatusBadRequest, "scheduleId tidak valid", nil)
		return
	}

	schedule, err := h.Schedules.GetByID(req.ScheduleID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	reserved, err := h.Schedules.ReservedSeats(req.ScheduleID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := w.SelectSchedule(schedule, reserved); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

type toggleSeatRequest struct {
	Seat seatmap.SeatID `json:"seat"`
}

// POST /api/booking/sessions/:id/seats/toggle
func (h BookingFlow) ToggleSeat(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	var req toggleSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := w.ToggleSeat(req.Seat); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

// PUT /api/booking/sessions/:id/passengers/:index
func (h BookingFlow) UpdatePassenger(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "index tidak valid", nil)
		return
	}

	var upd booking.PassengerUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}

	if err := w.UpdatePassenger(index, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

// POST /api/booking/sessions/:id/review
func (h BookingFlow) OpenReview(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}
	if err := w.OpenReview(); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

// POST /api/booking/sessions/:id/review/cancel
func (h BookingFlow) CancelReview(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}
	if err := w.CancelReview(); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

// POST /api/booking/sessions/:id/confirm
func (h BookingFlow) Confirm(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}
	if err := w.Confirm(); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.saveAndRespond(c, w)
}

// POST /api/booking/sessions/:id/submit
// Closing the success screen is what actually sends the booking: the wizard
// builds the draft, the backend gets exactly one request, and the outcome is
// written back to the session.
func (h BookingFlow) Submit(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}

	draft, err := w.BeginSubmit()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := h.Store.Save(c.Request.Context(), w); err != nil {
		RespondDomainError(c, err)
		return
	}

	reqID := middleware.GetRequestID(c)
	result, submitErr := h.Backend.Submit(c.Request.Context(), draft)
	w.FinishSubmit(result.BookingID, submitErr)

	if err := h.Store.Save(c.Request.Context(), w); err != nil {
		RespondDomainError(c, err)
		return
	}

	if submitErr != nil {
		utils.LogEvent(reqID, "booking", "submit_failed", "session_id="+w.ID)
		RespondDomainError(c, submitErr)
		return
	}

	utils.LogEvent(reqID, "booking", "submitted",
		"session_id="+w.ID+" booking_id="+strconv.FormatInt(result.BookingID, 10))
	c.JSON(http.StatusOK, gin.H{
		"message":   "booking berhasil dikirim",
		"bookingId": result.BookingID,
		"session":   w,
	})
}

func (h BookingFlow) load(c *gin.Context) (*booking.Wizard, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondError(c, http.StatusBadRequest, "id sesi kosong", nil)
		return nil, false
	}
	w, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return w, true
}

func (h BookingFlow) saveAndRespond(c *gin.Context, w *booking.Wizard) {
	if err := h.Store.Save(c.Request.Context(), w); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": w})
}
