package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	got := BuildVersion()

	assert.True(t, strings.HasPrefix(got, Version+" (commit: "), got)
	assert.Contains(t, got, ", built: ")
}

func TestShortRevision(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0123456789ab", shortRevision("0123456789abcdef0123"))
	assert.Equal(t, "abc", shortRevision("abc"))
}
