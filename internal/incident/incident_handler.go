package incident

import (
	"errors"
	"io"
	"net/http"

	"go-guardconsole/internal/daterange"
	incidenterrors "go-guardconsole/internal/incident/errors"
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

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	view, err := daterange.ParseViewKind(q.View)
	if err == nil {
		var resp ListResponse
		resp, err = h.service.List(c.Request.Context(), view, q.Date, Filter{Severity: q.Severity, ClientID: q.ClientID}, q.Refresh)
		if err == nil {
			response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp.Incidents)))
			return
		}
	}

	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// UploadAttachment accepts a multipart "file" plus an optional "caption".
func (h *Handler) UploadAttachment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxAttachmentBytes+(1<<20))

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, incidenterrors.ErrAttachmentTooLarge)
			return
		}
		writeError(c, incidenterrors.ErrEmptyAttachment)
		return
	}
	if header.Size > MaxAttachmentBytes {
		writeError(c, incidenterrors.ErrAttachmentTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(c, err)
		return
	}

	att, err := h.service.AttachFile(c.Request.Context(), c.Param("id"), Upload{
		Filename: header.Filename,
		Caption:  c.PostForm("caption"),
		Content:  content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, att, nil)
}
