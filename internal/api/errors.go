package api

import (
	"errors"
	"net/http"

	"featureboard/internal/modal"
	"featureboard/internal/service"
)

const (
	msgCreated = "Feature created successfully!"
	msgUpdated = "Feature updated successfully!"
	msgDeleted = "Feature deleted successfully!"
	msgBusy    = "This feature is already being saved."
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrFeatureNotFound):
		return http.StatusNotFound
	case errors.Is(err, modal.ErrBusy):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func userMessage(err error) string {
	if errors.Is(err, modal.ErrBusy) {
		return msgBusy
	}
	return service.UserMessage(err)
}
