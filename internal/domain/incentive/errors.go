package incentive

import "errors"

var (
	ErrConfigNotFound      = errors.New("incentive config not found")
	ErrUnknownTypeCode     = errors.New("unknown incentive type code")
	ErrInactiveTypeCode    = errors.New("incentive type is inactive")
	ErrInvalidFormulaType  = errors.New("formula type must be COUNT_MULTIPLY or PERCENT")
	ErrInvalidPositionKey  = errors.New("position set contains an unknown position key")
	ErrExclusionNotAllowed = errors.New("exclusion references an unknown incentive type")
	ErrPositionNotEligible = errors.New("employee position does not receive this incentive type")
	ErrEmployeeExcluded    = errors.New("employee is excluded from this incentive type")
)
