package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	pageAnalysisStartedTotal   atomic.Uint64
	pageAnalysisCompletedTotal atomic.Uint64
	pageAnalysisFailedTotal    atomic.Uint64
	auditUnavailableTotal      atomic.Uint64
	leadsCreatedTotal          atomic.Uint64

	// Fetch plus all three category passes plus the external audit.
	pageAnalysisDuration = newHistogram([]float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60})
)

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	pageAnalysisStartedTotal.Add(1)
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	pageAnalysisCompletedTotal.Add(1)
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	pageAnalysisFailedTotal.Add(1)
}

// IncAuditUnavailable counts analyses that fell back to local-only scoring
// because the external audit returned nothing.
func IncAuditUnavailable() {
	auditUnavailableTotal.Add(1)
}

// IncLeadCreated increments the stored-lead counter.
func IncLeadCreated() {
	leadsCreatedTotal.Add(1)
}

// ObserveAnalysisDuration records a full analysis duration in seconds.
func ObserveAnalysisDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	pageAnalysisDuration.Observe(seconds)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "page_analysis_started_total", "Total page analyses started", pageAnalysisStartedTotal.Load())
	writeCounter(&buf, "page_analysis_completed_total", "Total page analyses completed", pageAnalysisCompletedTotal.Load())
	writeCounter(&buf, "page_analysis_failed_total", "Total page analyses failed", pageAnalysisFailedTotal.Load())
	writeCounter(&buf, "page_analysis_audit_unavailable_total", "Total analyses completed without external audit data", auditUnavailableTotal.Load())
	writeCounter(&buf, "leads_created_total", "Total leads stored", leadsCreatedTotal.Load())
	writeHistogram(&buf, "page_analysis_duration_seconds", "Full page analysis duration in seconds", pageAnalysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
