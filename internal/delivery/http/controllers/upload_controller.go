package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/domain"
	"eventsgateway/internal/metrics"
)

// UploadFileField is the multipart form field holding the file.
const UploadFileField = "file"

type UploadController struct {
	Logger   *slog.Logger
	Service  domain.UploadService
	MaxBytes int64
}

func NewUploadController(logger *slog.Logger, svc domain.UploadService, maxBytes int64) *UploadController {
	return &UploadController{
		Logger:   logger,
		Service:  svc,
		MaxBytes: maxBytes,
	}
}

// UploadFile godoc
// @Summary Upload a PNG
// @Description Stores a PNG under "{user_id}-{unix_ms}.png" and returns its public URL.
// @Tags files
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PNG image"
// @Success 200 {object} domain.UploadedFile
// @Failure 400 {object} helpers.ErrorResponse "missing file field or only PNG files allowed"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 413 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse "storage rejected the upload"
// @Router /upload-file [post]
func (c *UploadController) UploadFile(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxBytes)
	if err := r.ParseMultipartForm(c.MaxBytes); err != nil {
		c.writeParseError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(UploadFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.WriteJSONError(w, http.StatusBadRequest, domain.ErrMissingFile.Error())
			return
		}
		c.writeParseError(w, r, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.writeParseError(w, r, err)
		return
	}

	uploaded, err := c.Service.UploadPNG(r.Context(), cred, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedContentType) {
			h.WriteJSONError(w, http.StatusBadRequest, domain.ErrUnsupportedContentType.Error())
			return
		}
		writeStoreError(w, r, c.Logger, err, http.StatusInternalServerError)
		return
	}
	metrics.UploadedBytes.Add(float64(uploaded.Size))
	h.WriteJSON(w, http.StatusOK, uploaded)
}

func (c *UploadController) writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		// The rest of the body is unread, so the connection cannot be reused.
		w.Header().Set("Connection", "close")
		h.WriteJSONError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}
	c.Logger.ErrorContext(r.Context(), "unreadable upload", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteInternalError(w)
}
