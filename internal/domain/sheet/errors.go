package sheet

import "errors"

var (
	ErrSheetNotFound      = errors.New("incentive sheet not found")
	ErrSheetAlreadyExists = errors.New("incentive sheet already exists for this branch and date range")
	ErrSheetDistributed   = errors.New("incentive sheet has already been distributed")
	ErrDateOutOfRange     = errors.New("input date falls outside the sheet date range")
	ErrUnknownSourceType  = errors.New("incentive type is not a shared source type")
)
