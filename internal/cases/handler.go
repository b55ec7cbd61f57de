package cases

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"processo-backend/internal/datajud"
	"processo-backend/internal/llm"
	"processo-backend/internal/shared/server/middleware"
	"processo-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches case routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cases/import", h.importCase)
	rg.GET("/cases", h.list)
	rg.GET("/cases/:caseId", h.details)
	rg.POST("/cases/:caseId/documents", h.uploadDocument)
	rg.POST("/cases/:caseId/documents/:documentId/summary", h.generateSummary)
}

func (h *Handler) importCase(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.CaseNumber) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "caseNumber is required", nil)
		return
	}

	result, err := h.Svc.ImportCase(c.Request.Context(), userID, req.CaseNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, datajud.ErrCaseNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "case not found in the court records API", nil)
		case errors.Is(err, datajud.ErrNoAPIKey):
			respond.Error(c, http.StatusInternalServerError, "configuration_error", "court records API key is not configured", nil)
		case errors.Is(err, datajud.ErrAuthExchange), errors.Is(err, datajud.ErrUpstream):
			respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toImportResponse(result))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list cases", nil)
		return
	}

	resp := make([]caseResponse, 0, len(list))
	for _, item := range list {
		resp = append(resp, toCaseResponse(item, false))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) details(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	caseID := c.Param("caseId")

	item, err := h.Svc.Details(c.Request.Context(), userID, caseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "case not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch case", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toCaseResponse(item, true))
}

func (h *Handler) uploadDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	caseID := c.Param("caseId")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

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

	doc, err := h.Svc.UploadDocument(c.Request.Context(), userID, caseID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "case not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toDocumentResponse(doc))
}

func (h *Handler) generateSummary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	caseID := c.Param("caseId")
	documentID := c.Param("documentId")

	summary, err := h.Svc.GenerateSummary(c.Request.Context(), userID, caseID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "case not found", nil)
		case errors.Is(err, ErrDocumentNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, llm.ErrGeneration):
			respond.Error(c, http.StatusBadGateway, "generation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate summary", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"documentId": documentID,
		"summary":    summary,
	})
}
