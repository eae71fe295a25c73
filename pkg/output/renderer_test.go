// Test Type: Unit Test
// Description: Tests for result rendering in text and JSON formats

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/retree/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleResults = []types.RenameResult{
	{Source: "/d/a.txt", Destination: "/d/renamed.txt"},
	{Source: "/d/b.txt", Destination: "/d/b.txt"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"JSON", FormatJSON, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatText)

	require.NoError(t, r.RenderResults(sampleResults, false))
	assert.Equal(t,
		"/d/a.txt -> /d/renamed.txt\n/d/b.txt -> /d/b.txt\n",
		buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	require.NoError(t, r.RenderResults(sampleResults, true))

	var report jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.True(t, report.DryRun)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "/d/a.txt", report.Results[0].Source)
	assert.True(t, report.Results[0].Changed)
	assert.False(t, report.Results[1].Changed)
}

func TestAutoResolvesToTextForNonFiles(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatAuto)
	assert.Equal(t, FormatText, r.Format())
}
