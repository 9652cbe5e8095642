package api

import (
	"log"
	stdhttp "net/http"

	intconfig "frontend/internal/config"
	h "frontend/internal/http/handlers"
	"frontend/internal/http/middleware"
	"frontend/internal/repositories"
	"frontend/internal/session"
	"frontend/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func NewRouter(env intconfig.Env, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.UserContext(env.JWTSecret))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message":    "route tidak ditemukan",
			"code":       "not_found",
			"request_id": middleware.GetRequestID(c),
			"details":    gin.H{"path": c.Request.URL.Path, "method": c.Request.Method},
		})
	})

	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, env.SessionTTL)
	} else {
		store = session.NewMemoryStore(env.SessionTTL)
	}

	schedules := h.ScheduleHandlers{Repo: repositories.ScheduleRepository{}}
	flow := h.BookingFlow{
		Store:     store,
		Schedules: repositories.ScheduleRepository{},
		Backend:   upstream.NewClient(env.BackendAPIURL),
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Schedule search
		api.GET("/schedules", schedules.Search)
		api.GET("/schedules/:id/seats", schedules.Seats)

		// Layout preview utility
		api.GET("/seat-layout", h.SeatLayout)

		// Booking wizard
		sessions := api.Group("/booking/sessions")
		sessions.POST("", flow.Create)
		sessions.GET("/:id", flow.Get)
		sessions.POST("/:id/schedule", flow.SelectSchedule)
		sessions.POST("/:id/seats/toggle", flow.ToggleSeat)
		sessions.PUT("/:id/passengers/:index", flow.UpdatePassenger)
		sessions.POST("/:id/review", flow.OpenReview)
		sessions.POST("/:id/review/cancel", flow.CancelReview)
		sessions.POST("/:id/confirm", flow.Confirm)
		sessions.POST("/:id/submit", flow.Submit)
		sessions.GET("/:id/e-ticket", flow.ETicket)
	}

	return r
}
