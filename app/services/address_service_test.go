package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ub-address-parser/app/requests"
	"github.com/ub-address-parser/internal/parser"
)

func newTestService() *AddressService {
	return NewAddressService(parser.NewAddressParser(0, nil), nil)
}

func TestParseAddress(t *testing.T) {
	svc := newTestService()

	result, err := svc.ParseAddress("БЗД 4 хороо 2 байр 4 корпус 67 тоот", requests.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, "БАЯНЗҮРХ", result.Sumname)
	assert.Equal(t, 4, result.Horooid)
	assert.Equal(t, 0.99, result.Confidence)

	_, err = svc.ParseAddress("", requests.ParseOptions{})
	assert.Error(t, err, "empty input is rejected at the service boundary")
}

func TestBatchJobLifecycle(t *testing.T) {
	svc := newTestService()

	addresses := []string{
		"БЗД 4 хороо 2 байр 4 корпус 67 тоот",
		"СБД 10/5 59",
		"тоот 56",
	}

	// Run synchronously; the controller is what backgrounds it.
	svc.ProcessBatchJob("job-1", addresses, requests.ParseOptions{})

	status, err := svc.GetJobStatus("job-1")
	require.NoError(t, err)
	assert.Equal(t, "done", status.Status)
	assert.Equal(t, len(addresses), status.Processed)
	assert.Equal(t, 1.0, status.Progress)

	results, err := svc.GetJobResults("job-1")
	require.NoError(t, err)
	require.Len(t, results, len(addresses))
	assert.Equal(t, "БАЯНЗҮРХ", results[0].Sumname)
	assert.Equal(t, "strict_content_blocks", results[1].MatchedPattern)
	assert.Equal(t, 0.30, results[2].Confidence)

	stream, err := svc.GetJobResultsStream("job-1")
	require.NoError(t, err)
	var streamed int
	for range stream {
		streamed++
	}
	assert.Equal(t, len(addresses), streamed)
}

func TestJobNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetJobStatus("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = svc.GetJobResults("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestEstimateBatchProcessingTime(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, 2, svc.EstimateBatchProcessingTime(20))
	assert.Equal(t, 0, svc.EstimateBatchProcessingTime(0))
}
