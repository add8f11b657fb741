package repository

import (
	"context"
	"io"
)

// ReportStorageRepository stores exported run reports.
type ReportStorageRepository interface {
	// PutReport uploads a report and returns its s3:// URI.
	PutReport(ctx context.Context, bucket, key string, body io.Reader) (string, error)
}
