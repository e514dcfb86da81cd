package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martagillo/habitline/internal/core/domain"
	"github.com/martagillo/habitline/internal/core/services"
)

type CheckOffHandler struct {
	svc *services.CheckOffService
}

func NewCheckOffHandler(svc *services.CheckOffService) *CheckOffHandler {
	return &CheckOffHandler{
		svc: svc,
	}
}

func (h *CheckOffHandler) RegisterRoutes(router *gin.RouterGroup) {
	checkOffs := router.Group("/habits/:id/checkoffs")
	{
		checkOffs.POST("", h.Create)
		checkOffs.GET("", h.List)
	}
}

func (h *CheckOffHandler) Create(c *gin.Context) {
	checkOff, err := h.svc.CheckOff(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		case errors.Is(err, domain.ErrHabitCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "habit already completed"})
		case errors.Is(err, domain.ErrAlreadyCheckedOff):
			c.JSON(http.StatusConflict, gin.H{"error": "already checked off for the current period"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, checkOff)
}

func (h *CheckOffHandler) List(c *gin.Context) {
	list, err := h.svc.ListByHabitID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if list == nil {
		list = []*domain.CheckOff{}
	}
	c.JSON(http.StatusOK, list)
}
