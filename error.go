package framesize

import "fmt"

type ErrInvalidArgument struct {
	Reason string
}

func (e ErrInvalidArgument) Error() string {
	if e.Reason == "" {
		return "invalid argument"
	}
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

type ErrUnknownFitPolicy struct {
	FitPolicy FitPolicy
}

func (e ErrUnknownFitPolicy) Error() string {
	return fmt.Sprintf("unknown fit policy: %s", e.FitPolicy)
}

type ErrUnknownScaleDirection struct {
	ScaleDirection ScaleDirection
}

func (e ErrUnknownScaleDirection) Error() string {
	return fmt.Sprintf("unknown scale direction: %s", e.ScaleDirection)
}
