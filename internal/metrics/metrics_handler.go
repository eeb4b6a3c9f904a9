package metrics

import (
	"net/http"

	"go-guardconsole/internal/daterange"
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

func (h *Handler) summary(subject Subject) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q SummaryQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		view, err := daterange.ParseViewKind(q.View)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		resp, err := h.service.GetSummary(c.Request.Context(), subject, c.Param("id"), view, q.Date, q.Refresh)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) ClientSummary() gin.HandlerFunc { return h.summary(SubjectClient) }

func (h *Handler) GuardSummary() gin.HandlerFunc { return h.summary(SubjectGuard) }
