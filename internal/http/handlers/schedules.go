package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"frontend/internal/repositories"
	"frontend/internal/seatmap"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandlers serves the search step of the booking flow.
type ScheduleHandlers struct {
	Repo ScheduleCatalog
}

// GET /api/schedules?from=&to=&date=
func (h ScheduleHandlers) Search(c *gin.Context) {
	q := repositories.ScheduleQuery{
		Origin:      strings.TrimSpace(c.Query("from")),
		Destination: strings.TrimSpace(c.Query("to")),
		Date:        strings.TrimSpace(c.Query("date")),
	}

	if q.Date != "" {
		if _, err := utils.ParseDate(q.Date); err != nil {
			RespondError(c, http.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)", nil)
			return
		}
	}

	schedules, err := h.Repo.Search(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GET /api/schedules/:id/seats
// Returns the generated layout for the schedule's vehicle with the reserved
// seats flagged, plus the raw reserved list for the picker.
func (h ScheduleHandlers) Seats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	schedule, err := h.Repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	reserved, err := h.Repo.ReservedSeats(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	cfg, err := seatmap.DefaultRowConfig(schedule.Vehicle.Capacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	layout, err := seatmap.Generate(schedule.Vehicle.Capacity, cfg, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule":      schedule,
		"reservedSeats": reserved,
		"layout":        layout.WithReserved(reserved),
	})
}
