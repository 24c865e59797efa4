package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) uptime() int64 {
	return int64(time.Since(h.startTime).Seconds())
}

// Health is a liveness probe; it never touches the database.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  h.uptime(),
	})
}

type dbProbe struct {
	Driver    string `json:"driver"`
	Status    string `json:"status"`
	Books     int64  `json:"books"`
	Libraries int64  `json:"libraries"`
	Error     string `json:"error,omitempty"`
}

// probe pings the pool and counts the two tables the catalog cannot work
// without. Status is "up", "down" or "unmigrated".
func (h *HealthHandler) probe(ctx context.Context) dbProbe {
	p := dbProbe{Driver: h.db.Dialector.Name(), Status: "down"}

	sqlDB, err := h.db.DB()
	if err != nil {
		p.Error = err.Error()
		return p
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		p.Error = err.Error()
		return p
	}

	tx := h.db.WithContext(ctx)
	for table, dst := range map[string]*int64{"books": &p.Books, "libraries": &p.Libraries} {
		if err := tx.Table(table).Count(dst).Error; err != nil {
			p.Status = "unmigrated"
			p.Error = err.Error()
			return p
		}
	}

	p.Status = "up"
	return p
}

// Ready is the readiness probe: 200 only when the database answers and the
// schema is in place.
func (h *HealthHandler) Ready(c *gin.Context) {
	p := h.probe(c.Request.Context())

	if p.Status != "up" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db":     p,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  h.uptime(),
		"db":      p,
	})
}
