package responses

import (
	"github.com/ub-address-parser/app/models"
)

// ParseAddressResponse wraps a single parse result.
type ParseAddressResponse struct {
	Result           *models.ParseResult `json:"result"`
	RulesVersion     string              `json:"rules_version"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
	CacheHit         bool                `json:"cache_hit"`
	LowConfidence    bool                `json:"low_confidence,omitempty"`
}

// BatchParseResponse acknowledges an accepted batch job.
type BatchParseResponse struct {
	JobID            string `json:"job_id"`
	EstimatedSeconds int    `json:"estimated_seconds"`
	TotalAddresses   int    `json:"total_addresses"`
	Message          string `json:"message"`
}

// JobStatusResponse reports batch job progress.
type JobStatusResponse struct {
	JobID              string  `json:"job_id"`
	Status             string  `json:"status"`
	Progress           float64 `json:"progress"` // 0.0 .. 1.0
	Processed          int     `json:"processed"`
	Total              int     `json:"total"`
	EstimatedRemaining int     `json:"estimated_remaining"` // seconds
	Message            string  `json:"message"`
}

// Job status values.
const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse is the uniform success envelope for non-streaming payloads.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse reports service health.
type HealthCheckResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	RulesVersion string            `json:"rules_version"`
	Services     map[string]string `json:"services"`
}
