package spreadsheet

import (
	"mordomia/internal/api/report"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Resumo"
	SheetCategories   = "Categorias"
	SheetTransactions = "Transações"
	SheetTithings     = "Dízimos"

	moneyFormat = "#,##0.00"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var transactionTypeLabels = map[string]string{
	"income":  "Receita",
	"expense": "Despesa",
}

var tithingTypeLabels = map[string]string{
	"tithe":    "Dízimo",
	"offering": "Oferta",
	"vow":      "Voto",
}

type workbook struct {
	f      *excelize.File
	header int
	money  int
}

// RenderMonthlyReport writes the report as a workbook with one sheet per
// section: summary, expense categories, transactions and tithings.
func RenderMonthlyReport(r report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w := &workbook{f: f}
	if err := w.styles(); err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}

	steps := []func(report.MonthlyReport) error{
		w.summary,
		w.categories,
		w.transactions,
		w.tithings,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *workbook) styles() error {
	header, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E4A62"}},
	})
	if err != nil {
		return err
	}

	format := moneyFormat
	money, err := w.f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return err
	}

	w.header = header
	w.money = money
	return nil
}

func (w *workbook) sheet(name string) error {
	if name == SheetSummary {
		return nil
	}
	_, err := w.f.NewSheet(name)
	return err
}

// table writes a header row followed by data rows starting at A1. Columns
// listed in moneyCols get the currency format.
func (w *workbook) table(name string, headers []interface{}, rows [][]interface{}, moneyCols ...int) error {
	if err := w.sheet(name); err != nil {
		return err
	}

	if err := w.f.SetSheetRow(name, "A1", &headers); err != nil {
		return err
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(name, "A1", lastHeader, w.header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	if len(rows) > 0 {
		for _, col := range moneyCols {
			top, _ := excelize.CoordinatesToCellName(col, 2)
			bottom, _ := excelize.CoordinatesToCellName(col, len(rows)+1)
			if err := w.f.SetCellStyle(name, top, bottom, w.money); err != nil {
				return err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return w.f.SetColWidth(name, "A", lastCol, 18)
}

func (w *workbook) summary(r report.MonthlyReport) error {
	s := r.Summary
	rows := [][]interface{}{
		{"Mês", r.Month},
		{"Receitas", s.Income},
		{"Despesas (transações)", s.TransactionExpenses},
		{"Despesas fixas", s.DedicatedExpenses},
		{"Total de despesas", s.TotalExpenses},
		{"Despesas pendentes", s.PendingExpenses},
		{"Dízimos", s.Tithes},
		{"Ofertas", s.Offerings},
		{"Votos", s.Vows},
		{"Total contribuído", s.TotalGiven},
		{"Saldo do mês", s.Net},
		{"Fidelidade (%)", r.Fidelity.Percentage},
		{"Avaliação", r.Fidelity.Message},
	}

	if err := w.table(SheetSummary, []interface{}{"Indicador", "Valor"}, rows); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(SheetSummary, "B3", "B12", w.money); err != nil {
		return err
	}
	return w.f.SetColWidth(SheetSummary, "A", "A", 26)
}

func (w *workbook) categories(r report.MonthlyReport) error {
	rows := make([][]interface{}, 0, len(r.ExpenseCategories.Entries))
	for _, e := range r.ExpenseCategories.Entries {
		rows = append(rows, []interface{}{e.Name, e.Value, e.Percentage})
	}
	return w.table(SheetCategories, []interface{}{"Categoria", "Valor", "Percentual (%)"}, rows, 2)
}

func (w *workbook) transactions(r report.MonthlyReport) error {
	rows := make([][]interface{}, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		rows = append(rows, []interface{}{t.Date, label(transactionTypeLabels, t.Type), t.Category, t.Description, t.Amount})
	}
	return w.table(SheetTransactions, []interface{}{"Data", "Tipo", "Categoria", "Descrição", "Valor"}, rows, 5)
}

func (w *workbook) tithings(r report.MonthlyReport) error {
	rows := make([][]interface{}, 0, len(r.Tithings))
	for _, t := range r.Tithings {
		rows = append(rows, []interface{}{t.Date, label(tithingTypeLabels, t.Type), t.Church, t.Amount})
	}
	return w.table(SheetTithings, []interface{}{"Data", "Tipo", "Igreja", "Valor"}, rows, 4)
}

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}
