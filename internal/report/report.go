// Package report exports run results to spreadsheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

const (
	summarySheet = "Summary"
	videosSheet  = "Videos"
)

var videoHeader = []string{
	"Video ID", "Title", "Length (s)", "Transcript Duration (s)",
	"Crowdwork (s)", "Material (s)", "Crowdwork %", "Material %",
}

// WriteXLSX writes a completed run's aggregate and per-video numbers to an
// .xlsx workbook at path.
func WriteXLSX(path string, result *types.RunResult) error {
	if result == nil {
		return fmt.Errorf("no result to export")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := writeSummary(f, result); err != nil {
		return err
	}
	if err := writeVideos(f, result); err != nil {
		return err
	}

	// The default sheet excelize creates is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, result *types.RunResult) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]any{
		{"Channel", result.ChannelTitle},
		{"Channel ID", result.ChannelID},
		{"Videos analyzed", result.VideosAnalyzed},
		{"Videos total", result.VideosTotal},
		{"Total duration (s)", result.TotalDuration},
		{"Crowdwork duration (s)", result.CrowdworkDuration},
		{"Material duration (s)", result.MaterialDuration},
		{"Crowdwork %", result.CrowdworkPercentage},
		{"Material %", result.MaterialPercentage},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}

func writeVideos(f *excelize.File, result *types.RunResult) error {
	if _, err := f.NewSheet(videosSheet); err != nil {
		return fmt.Errorf("create videos sheet: %w", err)
	}

	header := make([]any, len(videoHeader))
	for i, h := range videoHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(videosSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, v := range result.Videos {
		row := []any{
			v.VideoID, v.Title, v.Length, v.TotalDuration,
			v.CrowdworkDuration, v.MaterialDuration,
			v.CrowdworkPercentage, v.MaterialPercentage,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(videosSheet, cell, &row); err != nil {
			return fmt.Errorf("write video row: %w", err)
		}
	}
	return nil
}
