package rules

import "errors"

var (
	errMissingID       = errors.New("rule has no id")
	errTooFewPackages  = errors.New("rule must name at least two packages")
	errInvalidSeverity = errors.New("severity must be critical, high, medium, or low")
)
