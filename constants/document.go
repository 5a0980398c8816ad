package constants

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentType classifies a captured document.
type DocumentType string

const (
	DocumentTypeReceipt DocumentType = "RECEIPT"
	DocumentTypeBill    DocumentType = "BILL"
	DocumentTypeOther   DocumentType = "OTHER"
)

// DocumentStatus tracks a document through review and export.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"     // extracted, awaiting user review
	DocumentStatusProcessed DocumentStatus = "PROCESSED" // accepted by the user
	DocumentStatusExported  DocumentStatus = "EXPORTED"  // included in an export
)

// AllowedImageExtensions holds the image extensions accepted for capture upload.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ValidateImageName rejects file names whose extension is not an accepted
// capture format.
func ValidateImageName(name string) error {
	ext := NormalizeExt(filepath.Ext(name))
	if _, ok := AllowedImageExtensions[ext]; !ok {
		return fmt.Errorf("unsupported image extension %q", ext)
	}
	return nil
}
