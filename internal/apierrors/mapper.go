package apierrors

import (
	"errors"

	authProcessor "campaign-intake/internal/auth/processor"
	campaignProcessor "campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/progress"
	"campaign-intake/internal/wizard"
)

const retryInstruction = " Please try again."

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *wizard.ValidationError
	if errors.As(err, &validationErr) {
		return &APIError{
			StatusCode: 400,
			Code:       CodeValidationFailed,
			Message:    validationErr.Error(),
			Details:    validationErr.Fields,
		}
	}

	switch {
	case errors.Is(err, authProcessor.ErrAuthExpired):
		return AuthExpired("")

	case errors.Is(err, wizard.ErrClientRequired):
		return BadRequest(CodeClientRequired, "Please select a client")

	case errors.Is(err, wizard.ErrUnknownClient):
		return BadRequest(CodeUnknownClient, "Selected client does not exist")

	case errors.Is(err, wizard.ErrInvalidTransition):
		return Conflict(CodeInvalidStep, "This action is not available on the current step")

	case errors.Is(err, wizard.ErrEmptyImage):
		return BadRequest(CodeInvalidInput, "Image file is empty")

	case errors.Is(err, wizard.ErrImageNotFound):
		return NotFound(CodeImageNotFound, "Image not found")

	case errors.Is(err, wizard.ErrUnsupportedImage):
		return BadRequest(CodeUnsupportedImage, "Only JPEG and PNG images are accepted")

	case errors.Is(err, wizard.ErrImageTooLarge):
		return RequestEntityTooLarge(CodeImageTooLarge, "Image is too large")
	}

	// LinkError is checked before StoreError since it unwraps to one.
	var linkErr *campaignProcessor.LinkError
	if errors.As(err, &linkErr) {
		return ServiceUnavailable(CodeStoreError,
			"The campaign was created but could not be linked to the client."+retryInstruction, err)
	}

	var remoteErr *campaignProcessor.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return BadGateway(CodeTrackerError, remoteErr.Error()+"."+retryInstruction, err)
	}

	var storeErr *campaignProcessor.StoreError
	if errors.As(err, &storeErr) {
		return ServiceUnavailable(CodeStoreError, storeErr.Error()+"."+retryInstruction, err)
	}

	var connErr *progress.ConnectivityError
	if errors.As(err, &connErr) {
		return ServiceUnavailable(CodeConnectivityError, connErr.Message, err)
	}

	return InternalError(err)
}
