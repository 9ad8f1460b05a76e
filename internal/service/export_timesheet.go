package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type TimesheetRow struct {
	SessionID    int
	FullName     string
	Email        string
	ClockInAt    time.Time
	ClockOutAt   *time.Time
	BreakMinutes int
	TotalMinutes *int
	Status       string
}

func AddTimesheetsToExcel(rows []TimesheetRow, fileName string) error {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Session ID", "Full Name", "Email", "Clock In", "Clock Out", "Break (min)", "Total (min)", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.SessionID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.ClockInAt.Format("2006-01-02 15:04"))
		if entry.ClockOutAt != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.ClockOutAt.Format("2006-01-02 15:04"))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.BreakMinutes)
		if entry.TotalMinutes != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), *entry.TotalMinutes)
		}
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.Status)
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
