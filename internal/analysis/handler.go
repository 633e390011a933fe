package analysis

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-match/internal/extract"
	"resume-match/internal/shared/server/respond"
	"resume-match/internal/shared/util"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.submitResume)
	rg.POST("/analyses", h.analyze)
	rg.GET("/recommendations", h.recommendations)
	rg.GET("/session", h.session)
	rg.DELETE("/session", h.reset)
}

type submitResumeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

// submitResume accepts either a multipart file upload (PDF/DOCX) or a JSON
// body with raw resume text.
func (h *Handler) submitResume(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.uploadResumeFile(c)
		return
	}

	var req submitResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	parsed, err := h.Svc.SubmitResumeText(c.Request.Context(), req.FileName, req.Text)
	if err != nil {
		h.writeError(c, "failed to parse resume", err)
		return
	}
	respond.JSON(c, http.StatusCreated, parsed)
}

func (h *Handler) uploadResumeFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, extract.MaxFileSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	parsed, err := h.Svc.UploadResume(c.Request.Context(), fileName, data, mimeType, nil)
	if err != nil {
		h.writeError(c, "failed to process resume file", err)
		return
	}
	respond.JSON(c, http.StatusCreated, parsed)
}

type analyzeRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.AnalyzeJob(c.Request.Context(), req.Title, req.Company, req.Description)
	if err != nil {
		h.writeError(c, "failed to analyze job", err)
		return
	}
	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) recommendations(c *gin.Context) {
	recs, err := h.Svc.Recommendations(c.Request.Context())
	if err != nil {
		h.writeError(c, "failed to build recommendations", err)
		return
	}
	respond.OK(c, gin.H{"recommendations": recs})
}

func (h *Handler) session(c *gin.Context) {
	respond.OK(c, h.Svc.Session(c.Request.Context()))
}

func (h *Handler) reset(c *gin.Context) {
	h.Svc.Reset(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, fallback string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, extract.ErrEmptyFile),
		errors.Is(err, extract.ErrFileTooLarge),
		errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNoResume):
		respond.Error(c, http.StatusConflict, "no_resume", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, fallback, err.Error(), nil)
	}
}
