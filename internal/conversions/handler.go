package conversions

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"surplus-backend/internal/shared/server/middleware"
	"surplus-backend/internal/shared/server/respond"
	"surplus-backend/internal/shared/telemetry"
)

const (
	formField             = "docxFile"
	defaultMaxUploadBytes = 10 << 20 // 10MB
	defaultListLimit      = 20
	maxListLimit          = 100
)

//go:embed static/index.html
var indexHTML []byte

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the upload form and the upload endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.form)
	rg.POST("/upload", h.upload)
}

// RegisterAPIRoutes attaches the conversion history endpoint.
func (h *Handler) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.GET("/conversions", h.list)
}

func (h *Handler) form(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Text(c, http.StatusRequestEntityTooLarge, "validation_error",
				fmt.Sprintf("file too large (max %dMB)", h.MaxUploadBytes>>20))
			return
		}
		respond.Text(c, http.StatusBadRequest, "validation_error", formField+" is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Text(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	res, err := h.Svc.Convert(c.Request.Context(), ConvertInput{
		RequestID: middleware.RequestIDFromContext(c),
		FileName:  fileHeader.Filename,
		Body:      file,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Text(c, http.StatusBadRequest, "validation_error", "invalid file name")
			return
		}
		respond.Text(c, http.StatusInternalServerError, "processing_error", "Error processing the file.")
		return
	}
	defer res.Close()

	c.Set("conversionId", res.Conversion.ID)
	c.Set("rowCount", res.Conversion.RowCount)

	h.send(c, res)
}

func (h *Handler) send(c *gin.Context, res *Result) {
	f, err := res.Open()
	if err != nil {
		h.Svc.MarkTransferFailed(c.Request.Context(), res.Conversion.ID, err)
		respond.Text(c, http.StatusInternalServerError, "transfer_error", "Failed to download the CSV file.")
		return
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		c.Header("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", OutputFileName))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, f); err != nil {
		h.Svc.MarkTransferFailed(c.Request.Context(), res.Conversion.ID, err)
		c.Abort()
		return
	}

	telemetry.Info("conversions.sent", map[string]any{
		"conversion_id": res.Conversion.ID,
		"request_id":    res.Conversion.RequestID,
		"row_count":     res.Conversion.RowCount,
	})
}

type conversionResponse struct {
	ConversionID string `json:"conversionId"`
	RequestID    string `json:"requestId,omitempty"`
	FileName     string `json:"fileName"`
	MimeType     string `json:"mimeType,omitempty"`
	SizeBytes    int64  `json:"sizeBytes"`
	RowCount     int    `json:"rowCount"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	DurationMs   int64  `json:"durationMs"`
	CreatedAt    string `json:"createdAt"`
}

func (h *Handler) list(c *gin.Context) {
	limit := defaultListLimit
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	// Repos read a zero limit as "everything".
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	convs, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list conversions", nil)
		return
	}

	resp := make([]conversionResponse, 0, len(convs))
	for _, conv := range convs {
		resp = append(resp, conversionResponse{
			ConversionID: conv.ID,
			RequestID:    conv.RequestID,
			FileName:     conv.FileName,
			MimeType:     conv.MimeType,
			SizeBytes:    conv.SizeBytes,
			RowCount:     conv.RowCount,
			Status:       conv.Status,
			Error:        conv.Error,
			DurationMs:   conv.DurationMs,
			CreatedAt:    conv.CreatedAt.Format(time.RFC3339),
		})
	}

	respond.OK(c, resp)
}
