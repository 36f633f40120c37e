package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	base := errors.New("service unavailable")

	assert.True(t, IsRetryable(&RetryableError{Code: 503, Err: base}))
	assert.True(t, IsRetryable(fmt.Errorf("fetch: %w", &RetryableError{Err: base})))
	assert.False(t, IsRetryable(&FatalError{Err: base}))
	assert.False(t, IsRetryable(base))
}

func TestExhaustedRetriesError_Unwrap(t *testing.T) {
	cause := &RetryableError{Code: 500, Err: errors.New("backend error")}
	err := &ExhaustedRetriesError{Attempts: 5, Err: cause}

	var retryable *RetryableError
	assert.True(t, errors.As(err, &retryable))
	assert.Equal(t, 500, retryable.Code)
	assert.Contains(t, err.Error(), "5 attempts")
}

func TestMergeAttributes(t *testing.T) {
	merged := MergeAttributes(
		LabelAttributes{"A": "1"},
		LabelAttributes{"B": "2"},
		LabelAttributes{"A": "3"},
		LabelAttributes{"C": "4"},
	)

	assert.Equal(t, LabelAttributes{"A": "3", "B": "2", "C": "4"}, merged)
}

func TestParseReportType(t *testing.T) {
	reportType, err := ParseReportType("adgroup")
	assert.NoError(t, err)
	assert.Equal(t, AdGroupPerformanceReport, reportType)
	assert.Equal(t, "adgroup-performance", reportType.FileName())

	reportType, err = ParseReportType("campaign_performance_report")
	assert.NoError(t, err)
	assert.Equal(t, CampaignPerformanceReport, reportType)

	_, err = ParseReportType("keyword")
	assert.Error(t, err)
}
