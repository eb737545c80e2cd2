package calculation

import "errors"

var (
	// ErrInputTooLarge is returned when income and expenses cannot be represented in the signed output
	ErrInputTooLarge = errors.New("input values are too large to fit for the signed output")

	// ErrInputRange is returned when the social insurance total overflows the amount range
	ErrInputRange = errors.New("social insurance premium exceeds the supported amount range")

	// ErrMissingConfig is returned when no year configuration was passed
	ErrMissingConfig = errors.New("tax year configuration is required")
)
