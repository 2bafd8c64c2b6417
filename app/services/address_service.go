package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ub-address-parser/app/config"
	"github.com/ub-address-parser/app/models"
	"github.com/ub-address-parser/app/requests"
	"github.com/ub-address-parser/internal/parser"
)

var ErrJobNotFound = errors.New("job not found")

// AddressService runs the rule engine for the HTTP layer and owns the batch
// job registry. Jobs live in memory for the lifetime of the process.
type AddressService struct {
	parser    *parser.AddressParser
	logger    *zap.Logger
	startTime time.Time
	mu        sync.RWMutex

	jobs       map[string]*JobStatus
	jobResults map[string][]*models.ParseResult
}

// JobStatus is the mutable state of one batch job.
type JobStatus struct {
	JobID              string
	Status             string
	Progress           float64
	Processed          int
	Total              int
	EstimatedRemaining int
	Message            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewAddressService(p *parser.AddressParser, logger *zap.Logger) *AddressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressService{
		parser:     p,
		logger:     logger,
		startTime:  time.Now(),
		jobs:       make(map[string]*JobStatus),
		jobResults: make(map[string][]*models.ParseResult),
	}
}

// ParseAddress parses one raw address. Empty input is an error at the
// service boundary; the engine itself accepts anything.
func (as *AddressService) ParseAddress(rawAddress string, options requests.ParseOptions) (*models.ParseResult, error) {
	rawAddress = strings.TrimSpace(rawAddress)
	if rawAddress == "" {
		return nil, errors.New("address is empty")
	}
	return as.parser.Parse(rawAddress), nil
}

// EstimateBatchProcessingTime returns a rough duration in seconds for a
// batch of the given size.
func (as *AddressService) EstimateBatchProcessingTime(addressCount int) int {
	perAddress := config.C.Batch.PerAddressMs
	if perAddress <= 0 {
		perAddress = 100
	}
	return addressCount * perAddress / 1000
}

// ProcessBatchJob runs a batch in the calling goroutine; the controller
// launches it in the background. Progress is published through the job
// registry as addresses complete.
func (as *AddressService) ProcessBatchJob(jobID string, addresses []string, options requests.ParseOptions) {
	as.mu.Lock()
	as.jobs[jobID] = &JobStatus{
		JobID:     jobID,
		Status:    "running",
		Total:     len(addresses),
		Message:   "processing",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	as.mu.Unlock()

	results := make([]*models.ParseResult, len(addresses))
	for i, address := range addresses {
		result, err := as.ParseAddress(address, options)
		if err != nil {
			// Empty lines still occupy their slot so results align with input.
			result = &models.ParseResult{
				Korpus:         "0",
				MatchedPattern: "none",
				Warnings:       []string{parser.WarnNotEnoughInfo},
				RulesVersion:   parser.RulesVersion,
			}
		}
		results[i] = result

		as.mu.Lock()
		if job, exists := as.jobs[jobID]; exists {
			job.Processed = i + 1
			job.Progress = float64(i+1) / float64(len(addresses))
			job.EstimatedRemaining = as.EstimateBatchProcessingTime(len(addresses) - i - 1)
			job.UpdatedAt = time.Now()
			if i == len(addresses)-1 {
				job.Status = "done"
				job.Message = "completed"
			}
		}
		as.mu.Unlock()
	}

	as.mu.Lock()
	as.jobResults[jobID] = results
	as.mu.Unlock()

	as.logger.Info("batch job completed",
		zap.String("job_id", jobID),
		zap.Int("total_addresses", len(addresses)))
}

func (as *AddressService) GetJobStatus(jobID string) (*JobStatus, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	job, exists := as.jobs[jobID]
	if !exists {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (as *AddressService) GetJobResults(jobID string) ([]*models.ParseResult, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	results, exists := as.jobResults[jobID]
	if !exists {
		return nil, ErrJobNotFound
	}
	return results, nil
}

// GetJobResultsStream returns the job's results as a channel for NDJSON
// streaming. The channel closes when all results are delivered.
func (as *AddressService) GetJobResultsStream(jobID string) (<-chan *models.ParseResult, error) {
	results, err := as.GetJobResults(jobID)
	if err != nil {
		return nil, err
	}

	buf := config.C.Batch.StreamBufSize
	if buf <= 0 {
		buf = 100
	}
	resultChannel := make(chan *models.ParseResult, buf)

	go func() {
		defer close(resultChannel)
		for _, result := range results {
			resultChannel <- result
		}
	}()

	return resultChannel, nil
}

func (as *AddressService) GetStartTime() time.Time {
	return as.startTime
}
