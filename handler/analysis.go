package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Geetha-SV/ContractAI/analyzer"
	"github.com/Geetha-SV/ContractAI/middleware"
	"github.com/Geetha-SV/ContractAI/pkg/logger"
	"github.com/Geetha-SV/ContractAI/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	store     *service.AnalysisStore
	reports   *service.ReportService
	audit     *service.AuditSink
	archive   *service.ArchiveService // nil when archival is disabled
	maxUpload int64
}

func NewAnalysisHandler(reports *service.ReportService, audit *service.AuditSink, archive *service.ArchiveService, maxUploadMB int) *AnalysisHandler {
	return &AnalysisHandler{
		store:     service.GetAnalysisStore(),
		reports:   reports,
		audit:     audit,
		archive:   archive,
		maxUpload: int64(maxUploadMB) << 20,
	}
}

// Create handles a contract upload: extract text, run the analysis pipeline,
// append the audit record, and respond with the full result. The pipeline is
// synchronous and stateless; one document per invocation.
func (h *AnalysisHandler) Create(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF, DOCX and TXT files are allowed"})
		return
	}

	if h.maxUpload > 0 && header.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	text, err := service.ExtractText(data, header.Filename)
	if err != nil {
		// Extraction failure aborts the whole analysis for this document.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to extract text: " + err.Error()})
		return
	}

	analysis := analyzer.Analyze(text)
	analysis.ID = uuid.New().String()
	analysis.Filename = header.Filename
	analysis.Tenant = tenant
	analysis.CreatedAt = time.Now()

	if err := h.audit.Append(analysis); err != nil {
		logger.Warn(c.Request.Context(), "audit append failed",
			"analysis_id", analysis.ID,
			"error", err,
		)
	}

	if h.archive != nil {
		objectName := fmt.Sprintf("%s/%s/%s", tenant, analysis.ID, header.Filename)
		if err := h.archive.Store(c.Request.Context(), objectName, data, contentTypeFor(ext)); err != nil {
			logger.Warn(c.Request.Context(), "failed to archive original",
				"analysis_id", analysis.ID,
				"error", err,
			)
		} else if url, err := h.archive.PresignedURL(c.Request.Context(), objectName); err == nil {
			analysis.SourceURL = url
		}
	}

	h.store.Save(analysis)

	logger.Info(c.Request.Context(), "contract analyzed",
		"analysis_id", analysis.ID,
		"contract_type", analysis.Type,
		"overall_risk", analysis.Risk,
		"clauses", len(analysis.Clauses),
	)

	c.JSON(http.StatusOK, analysis)
}

// List returns a summary view of the current tenant's analyses.
func (h *AnalysisHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(analyses))
	for i, a := range analyses {
		result[i] = gin.H{
			"id":         a.ID,
			"filename":   a.Filename,
			"type":       a.Type,
			"risk":       a.Risk,
			"clauses":    len(a.Clauses),
			"created_at": a.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns one full analysis result.
func (h *AnalysisHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Report generates and returns the PDF report for one analysis.
func (h *AnalysisHandler) Report(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	report, err := h.reports.Generate(analysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report: " + err.Error()})
		return
	}

	if h.archive != nil {
		objectName := fmt.Sprintf("%s/%s/contract_analysis.pdf", tenant, analysis.ID)
		if err := h.archive.Store(c.Request.Context(), objectName, report, "application/pdf"); err != nil {
			logger.Warn(c.Request.Context(), "failed to archive report",
				"analysis_id", analysis.ID,
				"error", err,
			)
		} else if url, err := h.archive.PresignedURL(c.Request.Context(), objectName); err == nil {
			analysis.ReportURL = url
			h.store.Save(analysis)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="contract_analysis.pdf"`)
	c.Data(http.StatusOK, "application/pdf", report)
}

// Delete removes an analysis from the in-memory store. The audit log keeps
// its record.
func (h *AnalysisHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}
