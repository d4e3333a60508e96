package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

func sampleResult() *types.RunResult {
	return &types.RunResult{
		ChannelID:           "UCabcdefghijklmnopqrstuv",
		ChannelTitle:        "Comedy Central",
		VideosAnalyzed:      1,
		VideosTotal:         2,
		TotalDuration:       7,
		CrowdworkDuration:   4,
		MaterialDuration:    3,
		CrowdworkPercentage: 57.1,
		MaterialPercentage:  42.9,
		Videos: []types.VideoResult{
			{
				VideoID: "v1",
				Title:   "Stand Up Special",
				Length:  600,
				TranscriptAnalysis: types.TranscriptAnalysis{
					TotalDuration:       7,
					CrowdworkDuration:   4,
					MaterialDuration:    3,
					CrowdworkPercentage: 57.1,
					MaterialPercentage:  42.9,
				},
			},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteXLSX(path, sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.ElementsMatch(t, []string{summarySheet, videosSheet}, f.GetSheetList())

	channel, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Comedy Central", channel)

	analyzed, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", analyzed)

	header, err := f.GetCellValue(videosSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Video ID", header)

	videoID, err := f.GetCellValue(videosSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "v1", videoID)

	title, err := f.GetCellValue(videosSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Stand Up Special", title)
}

func TestWriteXLSX_NilResult(t *testing.T) {
	err := WriteXLSX(filepath.Join(t.TempDir(), "report.xlsx"), nil)
	assert.Error(t, err)
}
