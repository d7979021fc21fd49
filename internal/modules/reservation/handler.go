package reservation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts customer-reachable reservation routes on auth
// and the staff-only desk routes (check-in, check-out, reporting) on
// staff. The split keeps the role restriction at the boundary; the
// engine does not duplicate it.
func (h *Handler) RegisterRoutes(auth, staff *gin.RouterGroup) {
	auth.POST("/reservations", h.Create)
	auth.GET("/reservations/:code", h.Find)
	auth.POST("/reservations/:code/cancel", h.Cancel)

	staff.POST("/reservations/:code/checkin", h.CheckIn)
	staff.POST("/reservations/:code/checkout", h.CheckOut)
	staff.GET("/reservations", h.FindBetweenDates)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out := h.service.Create(c.Request.Context(), principalFrom(c), req)
	response.Render(c, out)
}

func (h *Handler) Find(c *gin.Context) {
	out := h.service.Find(c.Request.Context(), principalFrom(c), c.Param("code"))
	response.Render(c, out)
}

func (h *Handler) Cancel(c *gin.Context) {
	out := h.service.Cancel(c.Request.Context(), principalFrom(c), c.Param("code"))
	response.Render(c, out)
}

func (h *Handler) CheckIn(c *gin.Context) {
	out := h.service.CheckIn(c.Request.Context(), c.Param("code"))
	response.Render(c, out)
}

func (h *Handler) CheckOut(c *gin.Context) {
	out := h.service.CheckOut(c.Request.Context(), c.Param("code"))
	response.Render(c, out)
}

func (h *Handler) FindBetweenDates(c *gin.Context) {
	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom || !okTo {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to must be RFC3339 timestamps or YYYY-MM-DD dates")
		return
	}

	out := h.service.FindBetweenDates(c.Request.Context(), from, to)
	response.Render(c, out)
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// principalFrom rebuilds the caller identity stored by the JWT
// middleware.
func principalFrom(c *gin.Context) Principal {
	return Principal{
		Role:  domain.UserRole(c.GetString("role")),
		Email: c.GetString("email"),
	}
}
