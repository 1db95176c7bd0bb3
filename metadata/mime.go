package metadata

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/lilellia/fluidpath/fserr"
)

// MIMEType detects the MIME type of the file at path from its content.
func MIMEType(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fserr.New("mime_type", path, err)
	}
	return mtype.String(), nil
}

// IsText reports whether the file's detected MIME type is textual.
func IsText(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, fserr.New("is_text", path, err)
	}
	return isTextMIME(mtype.String()), nil
}

// IsBinary is the complement of IsText.
func IsBinary(path string) (bool, error) {
	text, err := IsText(path)
	if err != nil {
		return false, err
	}
	return !text, nil
}

func isTextMIME(mime string) bool {
	return strings.HasPrefix(mime, "text/") ||
		mime == "application/json" ||
		mime == "application/xml" ||
		mime == "application/javascript"
}
