package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/metforge/steelctl/internal/client"
	"github.com/metforge/steelctl/internal/domain"
	"github.com/metforge/steelctl/internal/fieldschema"
)

const (
	purchasedSheet = "Alınan Ürünler"
	soldSheet      = "Satılan Ürünler"
	totalsSheet    = "Toplamlar"
)

// Statistics renders a purchase/sold statistics report as an xlsx workbook.
// Dynamic field columns are the union of the fields seen in the rows, with
// Turkish headers.
func Statistics(path string, purchased client.PurchasedRows, sold client.SoldRows,
	pTotals domain.PurchaseTotals, sTotals domain.SoldTotals) error {

	xlsx := excelize.NewFile()
	xlsx.SetSheetName("Sheet1", purchasedSheet)
	writePurchased(xlsx, purchased)

	xlsx.NewSheet(2, soldSheet)
	writeSold(xlsx, sold)

	xlsx.NewSheet(3, totalsSheet)
	writeTotals(xlsx, pTotals, sTotals)

	xlsx.SetActiveSheet(1)
	if err := xlsx.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func writePurchased(xlsx *excelize.File, rows client.PurchasedRows) {
	extra := purchasedFieldUnion(rows)
	headers := []string{
		"Şube", "Kategori",
		fieldschema.TranslateLabel("diameter"),
		fieldschema.TranslateLabel("length"),
		fieldschema.TranslateLabel("weight"),
		fieldschema.TranslateLabel("purchasePrice"),
		fieldschema.TranslateLabel("purchaseKgPrice"),
		"Toplam Fiyat", "Adet", "Tarih",
	}
	for _, name := range extra {
		headers = append(headers, fieldschema.TranslateLabel(name))
	}
	writeHeader(xlsx, purchasedSheet, headers)

	row := 2
	for _, branch := range sortedKeys(rows) {
		for _, category := range sortedKeys(rows[branch]) {
			for _, stat := range rows[branch][category] {
				cells := []interface{}{
					branch, category,
					fieldschema.FormatValue(fieldschema.Integer, stat.Diameter),
					fieldschema.FormatValue(fieldschema.Decimal, stat.PurchaseLength),
					fieldschema.FormatValue(fieldschema.Decimal, stat.PurchaseWeight),
					fieldschema.FormatValue(fieldschema.Decimal, stat.PurchasePrice),
					fieldschema.FormatValue(fieldschema.Decimal, stat.PurchaseKgPrice),
					fieldschema.FormatValue(fieldschema.Decimal, stat.PurchaseTotalPrice),
					stat.TotalQuantity,
					formatDate(stat.CreatedAt),
				}
				for _, name := range extra {
					cells = append(cells, fieldValue(stat.Fields, name))
				}
				writeRow(xlsx, purchasedSheet, row, cells)
				row++
			}
		}
	}
}

func writeSold(xlsx *excelize.File, rows client.SoldRows) {
	headers := []string{
		"Şube", "Müşteri", "Kategori",
		"Kesim Uzunluğu", "Kesim Adedi",
		"Fire Uzunluğu", "Fire Ağırlığı",
		"Toplam Satış Ağırlığı", "Kg Fiyatı",
		"Toplam Fiyat", "Tarih",
	}
	writeHeader(xlsx, soldSheet, headers)

	row := 2
	for _, branch := range sortedKeys(rows) {
		for _, customer := range sortedKeys(rows[branch]) {
			for _, category := range sortedKeys(rows[branch][customer]) {
				for _, stat := range rows[branch][customer][category] {
					writeRow(xlsx, soldSheet, row, []interface{}{
						branch, customer, category,
						fieldschema.FormatValue(fieldschema.Decimal, stat.CutLength),
						stat.CutQuantity,
						fieldschema.FormatValue(fieldschema.Decimal, stat.WastageLength),
						fieldschema.FormatValue(fieldschema.Decimal, stat.WastageWeight),
						fieldschema.FormatValue(fieldschema.Decimal, stat.TotalSoldWeight),
						fieldschema.FormatValue(fieldschema.Decimal, stat.KgPrice),
						fieldschema.FormatValue(fieldschema.Decimal, stat.TotalPrice),
						formatDate(stat.CreatedAt),
					})
					row++
				}
			}
		}
	}
}

func writeTotals(xlsx *excelize.File, p domain.PurchaseTotals, s domain.SoldTotals) {
	writeRow(xlsx, totalsSheet, 1, []interface{}{"Toplam Alış Fiyatı",
		fieldschema.FormatValue(fieldschema.Decimal, p.TotalPurchasePrice)})
	writeRow(xlsx, totalsSheet, 2, []interface{}{"Toplam Alış Ağırlığı",
		fieldschema.FormatValue(fieldschema.Decimal, p.TotalPurchaseWeight)})
	writeRow(xlsx, totalsSheet, 3, []interface{}{"Toplam Alış Miktarı",
		fieldschema.FormatValue(fieldschema.Integer, p.TotalPurchaseQuantity)})
	writeRow(xlsx, totalsSheet, 4, []interface{}{"Toplam Satış Fiyatı",
		fieldschema.FormatValue(fieldschema.Decimal, s.TotalPrice)})
	writeRow(xlsx, totalsSheet, 5, []interface{}{"Toplam Satış Ağırlığı",
		fieldschema.FormatValue(fieldschema.Decimal, s.TotalSoldWeight)})
	writeRow(xlsx, totalsSheet, 6, []interface{}{"Toplam Fire Ağırlığı",
		fieldschema.FormatValue(fieldschema.Decimal, s.TotalWastageWeight)})
}

func writeHeader(xlsx *excelize.File, sheet string, headers []string) {
	for col, h := range headers {
		xlsx.SetCellValue(sheet, axis(col, 1), h)
	}
}

func writeRow(xlsx *excelize.File, sheet string, row int, cells []interface{}) {
	for col, v := range cells {
		xlsx.SetCellValue(sheet, axis(col, row), v)
	}
}

func axis(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func fieldValue(fields map[string]interface{}, name string) interface{} {
	if fields == nil {
		return ""
	}
	if v, ok := fields[name]; ok {
		return v
	}
	return ""
}

// purchasedFieldUnion collects every dynamic field name seen in the rows,
// fixed attributes excluded since they have their own columns.
func purchasedFieldUnion(rows client.PurchasedRows) []string {
	seen := map[string]bool{}
	for _, byCategory := range rows {
		for _, stats := range byCategory {
			for _, stat := range stats {
				for name := range stat.Fields {
					if !fieldschema.IsFixedAttribute(name) {
						seen[name] = true
					}
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
