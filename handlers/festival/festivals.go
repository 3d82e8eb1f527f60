package festival

import (
	"strconv"
	"time"

	"github.com/admitdesk/api/services"
	"github.com/admitdesk/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// FestivalHandler proxies the public-holiday API for the calendar view
type FestivalHandler struct {
	service *services.FestivalService
}

// NewFestivalHandler creates a new festival handler
func NewFestivalHandler(service *services.FestivalService) *FestivalHandler {
	return &FestivalHandler{service: service}
}

// ListFestivals handles GET /api/v1/festivals?year=
func (h *FestivalHandler) ListFestivals(c *fiber.Ctx) error {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "year must be a number")
		}
		year = parsed
	}

	holidays, err := h.service.PublicHolidays(c.Context(), year)
	if err != nil {
		return response.BadGateway(c, "Error fetching festivals")
	}

	return response.Success(c, holidays)
}
