package entity

import (
	"errors"
	"fmt"
)

// AccountResult is the outcome of processing a single account.
type AccountResult struct {
	AccountID string             `json:"account_id"`
	Report    *AccountCostReport `json:"report,omitempty"`
	Exceeded  bool               `json:"exceeded"`
	AlertSent bool               `json:"alert_sent"`
	MessageID string             `json:"message_id,omitempty"`
	Error     string             `json:"error,omitempty"`
	Err       error              `json:"-"`
}

// Success reports whether the account was processed without error.
func (r AccountResult) Success() bool {
	return r.Err == nil
}

// TotalCost returns the account total, or zero when aggregation failed.
func (r AccountResult) TotalCost() float64 {
	if r.Report == nil {
		return 0
	}
	return r.Report.TotalCost
}

// RunSummary collects every account result of one invocation.
type RunSummary struct {
	RunID     string          `json:"run_id"`
	Period    ReportPeriod    `json:"period"`
	Threshold float64         `json:"threshold"`
	DryRun    bool            `json:"dry_run"`
	Results   []AccountResult `json:"results"`
}

// Failed returns the results that ended in error.
func (s RunSummary) Failed() []AccountResult {
	var failed []AccountResult
	for _, r := range s.Results {
		if !r.Success() {
			failed = append(failed, r)
		}
	}
	return failed
}

// AlertsSent counts dispatched alerts.
func (s RunSummary) AlertsSent() int {
	count := 0
	for _, r := range s.Results {
		if r.AlertSent {
			count++
		}
	}
	return count
}

// Err joins the per-account failures into one error, nil if none failed.
func (s RunSummary) Err() error {
	var errs []error
	for _, r := range s.Failed() {
		errs = append(errs, fmt.Errorf("account %s: %w", r.AccountID, r.Err))
	}
	return errors.Join(errs...)
}
