package utils

import (
	"mime"
	"strings"
)

const (
	ContentTypePlainText   = "text/plain"
	ContentTypePDF         = "application/pdf"
	ContentTypeOctetStream = "application/octet-stream"
)

// MediaType strips parameters from a Content-Type header value.
// An empty value is the multipart/form-data default, text/plain.
func MediaType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ContentTypePlainText
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		if idx := strings.Index(contentType, ";"); idx >= 0 {
			contentType = contentType[:idx]
		}
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func GetFileExtensionFromContentType(contentType string) string {
	contentType = strings.ToLower(contentType)

	switch {
	case strings.Contains(contentType, "pdf"):
		return "pdf"
	case strings.Contains(contentType, "jpeg") || strings.Contains(contentType, "jpg"):
		return "jpg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "tiff") || strings.Contains(contentType, "tif"):
		return "tiff"
	case strings.Contains(contentType, "heif") || strings.Contains(contentType, "heic"):
		return "heic"
	case strings.Contains(contentType, "text/plain"):
		return "txt"
	default:
		return "bin"
	}
}
