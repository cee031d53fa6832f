package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lintgrade/lintgrade/internal/domain"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lintgrade_analyses_total",
		Help: "Completed code analyses by file type and status.",
	}, []string{"file_type", "status"})

	aiEnhancementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lintgrade_ai_enhancements_total",
		Help: "AI enhancement outcomes by status.",
	}, []string{"status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lintgrade_http_request_duration_seconds",
		Help:    "HTTP request latency by method, path and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func observeReport(fileType domain.FileType, report *domain.Report) {
	analysesTotal.WithLabelValues(string(fileType), "ok").Inc()
	if report.AIAnalysis != nil {
		aiEnhancementsTotal.WithLabelValues(report.AIAnalysis.Status).Inc()
	}
}
