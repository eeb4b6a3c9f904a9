package defaults

import (
	"errors"
	"net/http"

	"go-guardconsole/internal/daterange"
	defaultserrors "go-guardconsole/internal/defaults/errors"
	"go-guardconsole/internal/shared/apperror"
	"go-guardconsole/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetCalendar returns one bucket per day of the selected period.
func (h *Handler) GetCalendar(c *gin.Context) {
	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	view, err := daterange.ParseViewKind(q.View)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetCalendar(c.Request.Context(), c.Param("id"), view, q.Date, q.Refresh)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRange(c *gin.Context) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetRange(c.Request.Context(), c.Param("id"), q.From, q.To, q.Refresh)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetDay is the calendar cell click. A day without defaults answers
// 204 so the console stays where it is.
func (h *Handler) GetDay(c *gin.Context) {
	var q DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	view := daterange.ViewDay
	if q.View != "" {
		parsed, err := daterange.ParseViewKind(q.View)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		view = parsed
	}

	resp, err := h.service.GetDay(c.Request.Context(), c.Param("id"), view, c.Param("date"), q.Refresh)
	if errors.Is(err, defaultserrors.ErrNoDefaultsForDay) {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
