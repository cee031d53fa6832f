package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/domain"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"message":    "Code Analysis API is running",
		"version":    apiVersion,
		"ai_enabled": s.svc.AIEnabled(),
	})
}

// handleAnalyzeUpload accepts a multipart source file upload, stages it
// under a unique temp name, analyzes it and always removes the staged
// copy.
func (s *Server) handleAnalyzeUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	fileType, err := domain.FileTypeForPath(file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tempPath := filepath.Join(s.tempDir, fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		s.logger.Error("saving upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving upload failed"})
		return
	}
	defer os.Remove(tempPath)

	report, err := s.svc.AnalyzeFile(c.Request.Context(), tempPath)
	if err != nil {
		analysesTotal.WithLabelValues(string(fileType), "error").Inc()
		s.logger.Error("analysis failed", zap.String("filename", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("error processing file: %v", err)})
		return
	}
	observeReport(fileType, report)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Code analysis completed successfully",
		"filename":        file.Filename,
		"analysis":        report,
		"has_ai_insights": hasAIInsights(report),
	})
}

type analyzeSourceRequest struct {
	Code     string `json:"code" binding:"required"`
	FileType string `json:"file_type" binding:"required"`
}

// handleAnalyzeSource is the JSON convenience endpoint for callers that
// already hold the code in memory.
func (s *Server) handleAnalyzeSource(c *gin.Context) {
	var req analyzeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: code and file_type are required"})
		return
	}

	fileType := domain.FileType(req.FileType)
	if !fileType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type %q (allowed: py, js, jsx)", req.FileType)})
		return
	}

	report, err := s.svc.AnalyzeSource(c.Request.Context(), req.Code, fileType)
	if err != nil {
		analysesTotal.WithLabelValues(string(fileType), "error").Inc()
		s.logger.Error("analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("error processing source: %v", err)})
		return
	}
	observeReport(fileType, report)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Code analysis completed successfully",
		"analysis":        report,
		"has_ai_insights": hasAIInsights(report),
	})
}

func hasAIInsights(report *domain.Report) bool {
	return report.AIAnalysis != nil && report.AIAnalysis.Status == domain.AIStatusSuccess
}
