package handlers

import (
	"net/http"

	intconfig "frontend/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "frontend gateway berjalan"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		RespondError(c, http.StatusInternalServerError, "database belum terhubung", nil)
		return
	}
	var count int
	err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM schedules").Scan(&count)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal query ke database", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "schedules_in_db": count})
}
