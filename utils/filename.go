package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFilename builds a collision-free name for an uploaded file while
// keeping the original extension.
func StoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// SafeBaseName strips path separators an attacker could smuggle into a
// multipart filename.
func SafeBaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return filepath.Base(name)
}
