package services

import (
	"fmt"

	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Year in Review"

// ExportService renders a YearStats object as a downloadable spreadsheet
// report.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Workbook builds a single-sheet report: headline metrics, the monthly
// activity table, language distribution and recent projects.
func (s *ExportService) Workbook(stats *models.YearStats) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	row := 1
	var rowErr error
	setRow := func(values ...interface{}) {
		if rowErr != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err == nil {
			err = f.SetSheetRow(exportSheet, cell, &values)
		}
		if err != nil {
			rowErr = fmt.Errorf("failed to write row %d: %w", row, err)
			return
		}
		row++
	}

	setRow(fmt.Sprintf("%s - GitHub %d in Review", stats.Username, stats.AnalysisYear))
	row++

	setRow("Total contributions", stats.TotalCommits)
	setRow("Active days", stats.ActiveDays)
	setRow("Current streak", stats.Streak)
	setRow("Longest streak", stats.LongestStreak)
	setRow("Repositories", stats.ReposContributed)
	setRow("Created this year", stats.ReposCreatedThisYear)
	setRow("Stars received", stats.TotalStarsReceived)
	setRow("Most active month", stats.MostActiveMonth)
	setRow("Activity pattern", stats.ActivityPattern)
	row++

	setRow("Month", "Contributions", "Level")
	for _, month := range stats.ContributionGrid {
		setRow(month.Month, month.Count, month.Level)
	}
	row++

	setRow("Language", "Repositories")
	for _, lang := range stats.AllLanguages {
		setRow(lang.Name, lang.Count)
	}
	row++

	setRow("Recent project", "Language", "Stars", "Description")
	for _, repo := range stats.RecentRepos {
		setRow(repo.Name, repo.Language, repo.Stars, repo.Description)
	}
	if rowErr != nil {
		return nil, rowErr
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "D", "D", 50); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	return f, nil
}
