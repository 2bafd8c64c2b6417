package controllers

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ub-address-parser/app/config"
	"github.com/ub-address-parser/app/requests"
	"github.com/ub-address-parser/app/responses"
	"github.com/ub-address-parser/app/services"
	"github.com/ub-address-parser/helpers/utils"
	"github.com/ub-address-parser/internal/parser"
)

// AddressController handles the address parsing endpoints.
type AddressController struct {
	addressService *services.AddressService
	cacheService   services.ICacheService
	logger         *zap.Logger
}

func NewAddressController(addressService *services.AddressService, cacheService services.ICacheService, logger *zap.Logger) *AddressController {
	return &AddressController{
		addressService: addressService,
		cacheService:   cacheService,
		logger:         logger,
	}
}

// ParseAddress parses a single address, consulting the cache when requested.
func (ac *AddressController) ParseAddress(c *gin.Context) {
	var req requests.ParseAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	startTime := time.Now()

	minConfidence := req.Options.MinConfidence
	if minConfidence <= 0 {
		minConfidence = config.C.MinConfidence
	}

	if req.Options.UseCache {
		if cached, found, err := ac.cacheService.Get(c.Request.Context(), req.Address); err == nil && found {
			c.JSON(http.StatusOK, responses.ParseAddressResponse{
				Result:           cached,
				RulesVersion:     cached.RulesVersion,
				ProcessingTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:         true,
				LowConfidence:    cached.Confidence < minConfidence,
			})
			return
		}
	}

	result, err := ac.addressService.ParseAddress(req.Address, req.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "PARSE_ERROR",
			Message: err.Error(),
		})
		return
	}

	if req.Options.UseCache {
		if err := ac.cacheService.Set(c.Request.Context(), req.Address, result); err != nil {
			ac.logger.Warn("cache store failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.ParseAddressResponse{
		Result:           result,
		RulesVersion:     result.RulesVersion,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         false,
		LowConfidence:    result.Confidence < minConfidence,
	})
}

// BatchParse accepts a batch of addresses and processes them asynchronously.
func (ac *AddressController) BatchParse(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	if max := config.C.Batch.MaxAddresses; max > 0 && len(req.Addresses) > max {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "TOO_MANY_ADDRESSES",
			Message: "batch size exceeds the limit",
			Details: gin.H{"limit": max, "got": len(req.Addresses)},
		})
		return
	}

	jobID := utils.GenerateUUID()
	estimatedTime := ac.addressService.EstimateBatchProcessingTime(len(req.Addresses))

	go ac.addressService.ProcessBatchJob(jobID, req.Addresses, req.Options)

	c.JSON(http.StatusAccepted, responses.BatchParseResponse{
		JobID:            jobID,
		EstimatedSeconds: estimatedTime,
		TotalAddresses:   len(req.Addresses),
		Message:          "job accepted",
	})
}

// GetJobStatus reports progress of a batch job.
func (ac *AddressController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("jobID")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_JOB_ID",
			Message: "job id is required",
		})
		return
	}

	status, err := ac.addressService.GetJobStatus(jobID)
	if err != nil {
		ac.jobError(c, jobID, err)
		return
	}

	c.JSON(http.StatusOK, responses.JobStatusResponse{
		JobID:              jobID,
		Status:             status.Status,
		Progress:           status.Progress,
		Processed:          status.Processed,
		Total:              status.Total,
		EstimatedRemaining: status.EstimatedRemaining,
		Message:            status.Message,
	})
}

// GetJobResults returns batch results as JSON, or streams them as NDJSON
// (optionally gzipped) when ?format=ndjson is given.
func (ac *AddressController) GetJobResults(c *gin.Context) {
	jobID := c.Param("jobID")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_JOB_ID",
			Message: "job id is required",
		})
		return
	}

	if c.Query("format") == "ndjson" {
		ac.streamNDJSONResults(c, jobID, c.Query("gzip") == "1")
		return
	}

	results, err := ac.addressService.GetJobResults(jobID)
	if err != nil {
		ac.jobError(c, jobID, err)
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "job results",
		Data:    results,
	})
}

// HealthCheck reports liveness plus the active rule set version.
func (ac *AddressController) HealthCheck(c *gin.Context) {
	uptime := time.Since(ac.addressService.GetStartTime())

	cacheStatus := "healthy"
	if _, err := ac.cacheService.GetStats(c.Request.Context()); err != nil {
		cacheStatus = "degraded"
	}

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:       "healthy",
		Timestamp:    time.Now().Format(time.RFC3339),
		Uptime:       uptime.String(),
		RulesVersion: parser.RulesVersion,
		Services: map[string]string{
			"address_parser": "healthy",
			"cache":          cacheStatus,
		},
	})
}

func (ac *AddressController) jobError(c *gin.Context, jobID string, err error) {
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "JOB_NOT_FOUND",
			Message: "unknown job: " + jobID,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
		Error:   "JOB_ERROR",
		Message: err.Error(),
	})
}

// streamNDJSONResults writes one JSON object per line, flushing as it goes
// so large jobs stream instead of buffering.
func (ac *AddressController) streamNDJSONResults(c *gin.Context, jobID string, gzipEnabled bool) {
	resultChannel, err := ac.addressService.GetJobResultsStream(jobID)
	if err != nil {
		ac.jobError(c, jobID, err)
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	if gzipEnabled {
		c.Header("Content-Encoding", "gzip")
	}

	var writer gin.ResponseWriter = c.Writer
	if gzipEnabled {
		gzWriter := gzip.NewWriter(c.Writer)
		defer gzWriter.Close()
		writer = &gzipResponseWriter{
			ResponseWriter: c.Writer,
			gzWriter:       gzWriter,
		}
	}

	encoder := json.NewEncoder(writer)
	for result := range resultChannel {
		if err := encoder.Encode(result); err != nil {
			ac.logger.Error("ndjson encode failed", zap.Error(err), zap.String("job_id", jobID))
			return
		}
		if flusher, ok := writer.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// gzipResponseWriter routes writes through the gzip stream while keeping the
// underlying gin writer for headers and flushes.
type gzipResponseWriter struct {
	gin.ResponseWriter
	gzWriter *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzWriter.Write(data)
}

func (w *gzipResponseWriter) Flush() {
	w.gzWriter.Flush()
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
