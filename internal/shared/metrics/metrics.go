package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	importStartedTotal   atomic.Uint64
	importCompletedTotal atomic.Uint64
	importFailedTotal    atomic.Uint64

	summaryCompletedTotal atomic.Uint64
	summaryFailedTotal    atomic.Uint64

	importDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncImportStarted increments the started counter.
func IncImportStarted() {
	importStartedTotal.Add(1)
}

// IncImportCompleted increments the completed counter.
func IncImportCompleted() {
	importCompletedTotal.Add(1)
}

// IncImportFailed increments the failed counter.
func IncImportFailed() {
	importFailedTotal.Add(1)
}

// IncSummaryCompleted increments the generated-summary counter.
func IncSummaryCompleted() {
	summaryCompletedTotal.Add(1)
}

// IncSummaryFailed increments the failed-summary counter.
func IncSummaryFailed() {
	summaryFailedTotal.Add(1)
}

// ObserveImportDurationMs records one import duration in milliseconds.
func ObserveImportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	importDuration.Observe(value)
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
	writeCounter(&buf, "case_import_started_total", "Total case imports started", importStartedTotal.Load())
	writeCounter(&buf, "case_import_completed_total", "Total case imports completed", importCompletedTotal.Load())
	writeCounter(&buf, "case_import_failed_total", "Total case imports failed", importFailedTotal.Load())
	writeCounter(&buf, "summary_completed_total", "Total document summaries generated", summaryCompletedTotal.Load())
	writeCounter(&buf, "summary_failed_total", "Total document summaries failed", summaryFailedTotal.Load())
	writeHistogram(&buf, "case_import_duration_ms", "Case import duration in milliseconds", importDuration.Snapshot())
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

// NowMillis returns current time in milliseconds.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
