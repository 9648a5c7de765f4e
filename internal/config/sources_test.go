package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	sources := []Source{
		{Owner: "acme", Repo: "status", Label: "Acme"},
		{Owner: "beta", Repo: "uptime"},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportSources(sources, &buf))

	got, err := ImportSources(&buf)
	require.NoError(t, err)
	assert.Equal(t, sources, got)
}

func TestImportRejectsIncompleteEntries(t *testing.T) {
	_, err := ImportSources(strings.NewReader("sources:\n  - owner: acme\n"))
	assert.ErrorContains(t, err, "owner and repo are required")
}

func TestImportRejectsMalformedYAML(t *testing.T) {
	_, err := ImportSources(strings.NewReader("sources: [owner"))
	assert.Error(t, err)
}
