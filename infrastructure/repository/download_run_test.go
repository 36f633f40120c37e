package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

func TestBuildRecordQuery(t *testing.T) {
	reportDate := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	downloadedAt := time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC)

	query, args, err := buildRecordQuery(&domain.DownloadRun{
		Path:         "/data/2024/01/09/google-ads/ad-performance_v5.json.gz",
		ReportType:   "ad-performance",
		ReportDate:   &reportDate,
		RowCount:     12,
		AccountCount: 3,
		DownloadedAt: downloadedAt,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO report_downloads (path,report_type,report_date,row_count,account_count,downloaded_at) VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Contains(t, query, "ON CONFLICT (path) DO UPDATE SET")
	assert.Equal(t, []interface{}{
		"/data/2024/01/09/google-ads/ad-performance_v5.json.gz",
		"ad-performance",
		"2024-01-09",
		12,
		3,
		downloadedAt,
	}, args)
}

func TestBuildRecordQuery_WithoutReportDate(t *testing.T) {
	_, args, err := buildRecordQuery(&domain.DownloadRun{
		Path:       "/data/google-ads-account-structure_v5.csv.gz",
		ReportType: "account-structure",
	})
	require.NoError(t, err)

	assert.Nil(t, args[2])
}

func TestNoopDownloadRunRepository(t *testing.T) {
	repo := NewNoopDownloadRunRepository()

	assert.NoError(t, repo.Record(context.Background(), &domain.DownloadRun{Path: "x"}))
}
