package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"plantlog/entities"
	"plantlog/pkg/stage"
)

const sheet = "Plants"

// Workbook renders the collection as an xlsx report, one row per plant in
// display order. Status cells carry the machine values (kind + days); any
// wording is up to whoever opens the file.
func Workbook(plants []entities.Plant, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export: drop default sheet: %w", err)
	}

	head := []any{"Common", "Latin", "Location", "Notes", "Stage", "Start", "Status", "Days", "Stages recorded"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return nil, fmt.Errorf("export: header: %w", err)
	}

	for i, p := range stage.SortForDisplay(plants, now) {
		row := []any{p.Common, p.Latin, p.Location, p.Notes, "", "", "", "", len(p.History)}
		if cur := stage.Current(p); cur != nil {
			st := stage.ClassifyRecord(*cur, now)
			row[4] = cur.Kind
			row[5] = cur.Start
			row[6] = string(st.Kind)
			row[7] = st.Days
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}
	return f, nil
}
