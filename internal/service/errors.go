package service

import (
	"errors"
)

var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrFeaturesFetch   = errors.New("failed to fetch feature data")
	ErrFeatureUpdate   = errors.New("failed to update feature")
	ErrAttributesSave  = errors.New("failed to save feature attributes")
	ErrFeatureDelete   = errors.New("failed to delete feature")
	ErrFeatureCreate   = errors.New("failed to create feature")
)

// OpError ties a backend failure to the operation that hit it.
type OpError struct {
	Op    error
	Cause error
}

func (e *OpError) Error() string {
	return e.Op.Error() + ": " + e.Cause.Error()
}

func (e *OpError) Unwrap() []error {
	return []error{e.Op, e.Cause}
}

func opError(op, cause error) error {
	return &OpError{Op: op, Cause: cause}
}

// UserMessage is the notification text for a failed operation.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrFeatureNotFound):
		return "Feature not found."
	case errors.Is(err, ErrFeaturesFetch):
		return "Failed to fetch feature data."
	case errors.Is(err, ErrFeatureUpdate):
		return "Failed to update feature."
	case errors.Is(err, ErrAttributesSave):
		return "Failed to save feature attributes."
	case errors.Is(err, ErrFeatureDelete):
		var oe *OpError
		if errors.As(err, &oe) {
			return "Failed to delete feature: " + oe.Cause.Error()
		}
		return "Failed to delete feature."
	case errors.Is(err, ErrFeatureCreate):
		return "Failed to create feature."
	}
	return "An unexpected error occurred during the database update."
}
