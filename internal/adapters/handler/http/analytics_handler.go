package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martagillo/habitline/internal/core/domain"
	"github.com/martagillo/habitline/internal/core/services"
)

type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc: svc,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/habits/:id/streaks", h.Streaks)
	router.GET("/habits/:id/performance", h.Performance)
	router.GET("/habits/:id/performance/monthly", h.MonthlyPerformance)

	analytics := router.Group("/analytics")
	{
		analytics.GET("/summary", h.Summary)
		analytics.GET("/activity", h.Activity)
	}
}

func (h *AnalyticsHandler) Streaks(c *gin.Context) {
	result, err := h.svc.Streaks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) Performance(c *gin.Context) {
	result, err := h.svc.LifetimePerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) MonthlyPerformance(c *gin.Context) {
	result, err := h.svc.MonthlyPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "name")
	order := c.DefaultQuery("order", "asc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
		return
	}

	rows, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := services.SortSummary(rows, sortBy, order == "asc"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habits": rows,
		"count":  len(rows),
	})
}

func (h *AnalyticsHandler) Activity(c *gin.Context) {
	recurrence := c.DefaultQuery("recurrence", domain.RecurrenceDaily)

	buckets, err := h.svc.RecentActivity(c.Request.Context(), recurrence)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedRecurrence) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recurrence": recurrence,
		"buckets":    buckets,
	})
}

func (h *AnalyticsHandler) writeHabitError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrHabitNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
