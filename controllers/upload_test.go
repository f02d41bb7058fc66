package controllers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUploadDestinationSharesOneMonthBucket(t *testing.T) {
	// A tick before midnight on New Year's Eve: the directory and the
	// public URL must still land in the same month bucket.
	now := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)

	dir, fileURL := uploadDestination("./uploads", "photo", "a1b2c3.jpg", now)

	assert.Equal(t, filepath.Join("uploads", "photo", "2026-12"), dir)
	assert.Equal(t, "/files/photo/2026-12/a1b2c3.jpg", fileURL)
}

func TestUploadDestinationUsesKindSubdir(t *testing.T) {
	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	dir, fileURL := uploadDestination("/srv/files", "manuscript", "deadbeef.pdf", now)

	assert.Equal(t, filepath.Join("/srv/files", "manuscript", "2026-03"), dir)
	assert.Equal(t, "/files/manuscript/2026-03/deadbeef.pdf", fileURL)
}
