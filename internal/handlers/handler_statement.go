package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/SscSPs/finance_dashboard_app/internal/middleware"
	"github.com/SscSPs/finance_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// maxStatementUploadBytes caps multipart statement uploads.
const maxStatementUploadBytes = 10 << 20

// statementHandler handles the two-phase statement ingestion flow.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// registerStatementRoutes registers routes related to statement ingestion.
// Parsing is the most expensive request the service takes, so the group
// carries its own rate limit.
func registerStatementRoutes(rg *gin.RouterGroup, cfg *config.Config, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements", middleware.RateLimit(uploadRateLimiter(cfg)))
	{
		statements.POST("", h.processStatement)
		statements.POST("/upload", h.uploadStatement)
		statements.POST("/commit", h.commitStatement)
	}
}

// processStatement godoc
// @Summary Parse a statement from raw rows
// @Description Parses statement rows into normalized, categorized candidates and marks duplicates against the existing ledger. Nothing is persisted.
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   statement body dto.ProcessStatementRequest true "Statement rows"
// @Success 200 {object} dto.StagedStatementResponse
// @Failure 400 {object} map[string]string "Unparseable statement"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to process statement"
// @Security BearerAuth
// @Router /statements [post]
func (h *statementHandler) processStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	h.process(c, userID, req.Rows)
}

// uploadStatement godoc
// @Summary Parse a statement from a CSV file
// @Description Decodes a multipart CSV upload into rows and parses it like the raw rows endpoint. Nothing is persisted.
// @Tags statements
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Statement CSV file"
// @Success 200 {object} dto.StagedStatementResponse
// @Failure 400 {object} map[string]string "Unreadable or unparseable file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to process statement"
// @Security BearerAuth
// @Router /statements/upload [post]
func (h *statementHandler) uploadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing statement file: " + err.Error()})
		return
	}
	if fileHeader.Size > maxStatementUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statement file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable statement file"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Statement preambles have ragged row lengths; the parser copes.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		logger.Warn("Failed to decode statement CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CSV: " + err.Error()})
		return
	}

	h.process(c, userID, rows)
}

func (h *statementHandler) process(c *gin.Context, userID string, rows [][]string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staged, err := h.statementService.ProcessStatement(c.Request.Context(), userID, rows)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Statement rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to process statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStagedStatementResponse(*staged))
}

// commitStatement godoc
// @Summary Commit reviewed statement candidates
// @Description Persists reviewed candidates after re-checking each against a fresh ledger snapshot
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   commit body dto.CommitStatementRequest true "Reviewed candidates"
// @Success 201 {object} dto.CommitStatementResponse
// @Failure 400 {object} map[string]string "Invalid candidates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to commit statement"
// @Security BearerAuth
// @Router /statements/commit [post]
func (h *statementHandler) commitStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommitStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CommitStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.statementService.CommitStatement(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Statement commit rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit statement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommitStatementResponse(*result))
}
