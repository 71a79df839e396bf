package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mktflow/model"
)

const (
	sheetContent      = "Contenido"
	sheetDistribution = "Distribución por Categoría"
	sheetProgress     = "Progreso por Estado"
)

// ExportFile writes a three-sheet workbook: the raw items, the category
// distribution and the status progress, each distribution row carrying a
// count and a percentage of the total.
func ExportFile(path string, items []model.ContentItem) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetContent)
	if err := writeContentSheet(f, items); err != nil {
		return err
	}
	if err := writeDistributionSheet(f, items); err != nil {
		return err
	}
	if err := writeProgressSheet(f, items); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeContentSheet(f *excelize.File, items []model.ContentItem) error {
	header := []interface{}{"Título", "Fecha", "Categoría", "Descripción", "Estado"}
	if err := f.SetSheetRow(sheetContent, "A1", &header); err != nil {
		return err
	}
	for i, item := range items {
		row := []interface{}{
			item.Title,
			item.Date.Format("2006-01-02"),
			string(item.Category),
			item.Description,
			string(item.Status),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetContent, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeDistributionSheet(f *excelize.File, items []model.ContentItem) error {
	if _, err := f.NewSheet(sheetDistribution); err != nil {
		return err
	}

	counts := make(map[model.ContentCategory]int)
	for _, item := range items {
		counts[item.Category]++
	}

	header := []interface{}{"Categoría", "Cantidad", "Porcentaje"}
	if err := f.SetSheetRow(sheetDistribution, "A1", &header); err != nil {
		return err
	}
	for i, category := range model.ContentCategories {
		row := []interface{}{
			string(category),
			counts[category],
			percentage(counts[category], len(items)),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetDistribution, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeProgressSheet(f *excelize.File, items []model.ContentItem) error {
	if _, err := f.NewSheet(sheetProgress); err != nil {
		return err
	}

	counts := make(map[model.ContentStatus]int)
	for _, item := range items {
		counts[item.Status]++
	}

	header := []interface{}{"Estado", "Cantidad", "Porcentaje"}
	if err := f.SetSheetRow(sheetProgress, "A1", &header); err != nil {
		return err
	}
	for i, status := range model.ContentStatuses {
		row := []interface{}{
			string(status),
			counts[status],
			percentage(counts[status], len(items)),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetProgress, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func percentage(count, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100)
}
