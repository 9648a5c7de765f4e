package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsOutputValidUTF8(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"database connectivity outage", 10, "database …"},
		{" Partial outage in 東京リージョン", 20, " Partial outage in …"},
		{"サービス停止", 4, "サービ…"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.limit)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got))
	}
}
