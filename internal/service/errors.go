package service

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrReportAlreadySent = errors.New("report already sent for this analysis")
	ErrNothingToReport   = errors.New("analysis has no anomaly to report")
	ErrFileExpired       = errors.New("file is no longer available")
	ErrOracleUnavailable = errors.New("analysis model unavailable")
	ErrDeliveryFailed    = errors.New("email delivery failed")
)
