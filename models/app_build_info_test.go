package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-05-01", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-05-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "version 1.4.0, commit abc123, built 2026-05-01", info.String())
}

func TestAppBuildInfo_MissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Empty(t, info.BuildVersion())
	assert.Equal(t, "version N/A, commit N/A, built N/A", info.String())
}
