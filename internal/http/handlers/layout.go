package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"frontend/internal/seatmap"

	"github.com/gin-gonic/gin"
)

// GET /api/seat-layout?capacity=8&rows=2,2,2,3&driver=true
// Standalone layout utility: the admin pages preview vehicle layouts with it.
// rows is optional; when omitted it is derived from capacity.
func SeatLayout(c *gin.Context) {
	capacity := 0
	if raw := strings.TrimSpace(c.Query("capacity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "capacity tidak valid", nil)
			return
		}
		capacity = n
	}

	withDriver := true
	if raw := strings.TrimSpace(c.Query("driver")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "driver harus true/false", nil)
			return
		}
		withDriver = b
	}

	var rowConfig []int
	if raw := strings.TrimSpace(c.Query("rows")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				RespondError(c, http.StatusBadRequest, "rows harus berupa angka dipisah koma", nil)
				return
			}
			rowConfig = append(rowConfig, n)
		}
	} else {
		cfg, err := seatmap.DefaultRowConfig(capacity)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rowConfig = cfg
	}

	layout, err := seatmap.Generate(capacity, rowConfig, withDriver)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}
