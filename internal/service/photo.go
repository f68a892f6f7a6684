package service

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/condor-cl/users-api/internal/model"
)

// decodePhoto turns a transport-encoded image payload into raw bytes.
// Payloads may carry a data-URI prefix ("data:image/png;base64,") and
// whitespace or line breaks introduced by transport encoding; both are
// stripped before decoding.
func decodePhoto(encoded string) ([]byte, error) {
	if _, rest, found := strings.Cut(encoded, ","); found {
		encoded = rest
	}

	encoded = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, encoded)

	if encoded == "" {
		return nil, &model.InvalidPhotoError{Reason: model.PhotoReasonEmpty}
	}

	photo, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &model.InvalidPhotoError{Reason: model.PhotoReasonDecode, Err: err}
	}

	return photo, nil
}
