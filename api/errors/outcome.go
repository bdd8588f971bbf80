package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	mserrors "github.com/customeros/notestack/internal/errors"
)

const SuccessMessage = "Files uploaded successfully"

// SuccessBody is the response for a fully ingested request.
func SuccessBody() gin.H {
	return gin.H{"status": http.StatusOK, "message": SuccessMessage}
}

// StatusFor maps an ingestion error to its HTTP status and response body.
// Anything unclassified is reported like a collaborator failure.
func StatusFor(err error) (int, gin.H) {
	switch {
	case err == nil:
		return http.StatusOK, SuccessBody()
	case errors.Is(err, mserrors.ErrHeaderNotFound),
		errors.Is(err, mserrors.ErrUserNotFound),
		errors.Is(err, mserrors.ErrMalformedRequest):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, mserrors.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, gin.H{"error": mserrors.ErrPayloadTooLarge.Error()}
	default:
		return http.StatusServiceUnavailable, gin.H{"error": mserrors.ErrUploadUnavailable.Error()}
	}
}
