package types

import "errors"

var (
	ErrMissingThreshold   = errors.New("threshold amount is required (THRESHOLD_AMOUNT or --threshold)")
	ErrInvalidThreshold   = errors.New("threshold amount must be a non-negative number")
	ErrMissingTopicARN    = errors.New("SNS topic ARN is required (SNS_TOPIC_ARN or --topic-arn)")
	ErrInvalidMaxServices = errors.New("max services to report must be at least 1")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrMalformedCostData  = errors.New("malformed cost data")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)
