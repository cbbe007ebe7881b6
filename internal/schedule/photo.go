package schedule

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const imageDataURIPrefix = "data:image/"

// EncodePhoto sniffs data and returns it as a base64 data URI. Non-image
// content is rejected.
func EncodePhoto(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Field: "photo", Message: "file is empty"}
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", &ValidationError{Field: "photo", Message: "unsupported content type " + mtype.String()}
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsImageDataURI reports whether blob looks like an image data URI.
func IsImageDataURI(blob string) bool {
	return strings.HasPrefix(blob, imageDataURIPrefix) && strings.Contains(blob, ",")
}
