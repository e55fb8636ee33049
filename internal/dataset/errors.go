package dataset

import "errors"

// Sentinel errors returned by the integrity checks.
var (
	ErrRowCount       = errors.New("unexpected row count")
	ErrWeightSum      = errors.New("sector weights do not sum to 100")
	ErrProbabilitySum = errors.New("scenario probabilities do not sum to 1")
	ErrUnknownStatus  = errors.New("unknown sector status")
	ErrPeriodMismatch = errors.New("period label does not match date")
	ErrQuarterOrder   = errors.New("quarters out of sequence")
	ErrDateOrder      = errors.New("dates out of sequence")
	ErrUnknownDataset = errors.New("unknown dataset")
)
