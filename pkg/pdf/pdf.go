package pdf

import (
	"bytes"
	"fmt"
	"mordomia/internal/api/report"
	"mordomia/pkg/metrics"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth   = 210.0
	margin      = 15.0
	contentW    = pageWidth - 2*margin
	lineHeight  = 6.0
	fontFamily  = "Helvetica"
	headerTitle = "Relatório Mensal de Mordomia"

	ContentType = "application/pdf"
)

var (
	brandColor = [3]int{46, 74, 98}
	lightFill  = [3]int{236, 241, 245}
)

var urgencyLabels = map[string]string{
	"critical": "Crítica",
	"high":     "Alta",
	"medium":   "Média",
	"low":      "Baixa",
}

type renderer struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// RenderMonthlyReport lays the report out as an A4 document. Sections always
// appear in the same order: header, scripture, summary, tithe fidelity,
// expense categories, goals, assessment, action items, then the page footer.
func RenderMonthlyReport(r report.MonthlyReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, 20)
	doc.SetTitle(headerTitle+" "+r.Month, true)
	doc.SetCreator("Mordomia", true)
	doc.AliasNbPages("{nb}")

	p := &renderer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("cp1252")}

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(fontFamily, "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, p.tr(fmt.Sprintf("Página %d de {nb}", doc.PageNo())), "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	p.header(r)
	p.scripture(r.Scripture)
	p.summary(r.Summary)
	p.fidelity(r.Fidelity)
	p.categories(r.ExpenseCategories.Entries)
	p.goals(r)
	p.assessment(r.Assessment)
	p.actionItems(r.ActionItems)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *renderer) header(r report.MonthlyReport) {
	d := p.doc
	d.SetFillColor(brandColor[0], brandColor[1], brandColor[2])
	d.SetTextColor(255, 255, 255)
	d.SetFont(fontFamily, "B", 16)
	d.CellFormat(contentW, 12, p.tr(headerTitle), "", 1, "C", true, 0, "")

	d.SetFont(fontFamily, "", 11)
	sub := "Referência: " + r.Month
	if r.UserName != "" {
		sub = r.UserName + " | " + sub
	}
	d.CellFormat(contentW, 8, p.tr(sub), "", 1, "C", true, 0, "")
	d.SetTextColor(0, 0, 0)
	d.Ln(4)
}

func (p *renderer) scripture(s report.Scripture) {
	d := p.doc
	d.SetFillColor(lightFill[0], lightFill[1], lightFill[2])
	d.SetFont(fontFamily, "I", 10)
	d.MultiCell(contentW, 5.5, p.tr("\""+s.Text+"\""), "", "C", true)
	d.SetFont(fontFamily, "B", 9)
	d.CellFormat(contentW, 6, p.tr(s.Reference), "", 1, "C", true, 0, "")
	d.Ln(4)
}

func (p *renderer) sectionTitle(title string) {
	d := p.doc
	d.SetFont(fontFamily, "B", 12)
	d.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	d.CellFormat(contentW, 8, p.tr(title), "B", 1, "L", false, 0, "")
	d.SetTextColor(0, 0, 0)
	d.Ln(1)
}

func (p *renderer) row(cols []string, widths []float64, aligns string, fill bool) {
	for i, col := range cols {
		p.doc.CellFormat(widths[i], lineHeight, p.tr(col), "1", 0, string(aligns[i]), fill, 0, "")
	}
	p.doc.Ln(-1)
}

func (p *renderer) summary(s report.Summary) {
	p.sectionTitle("Resumo Financeiro")

	widths := []float64{contentW * 0.6, contentW * 0.4}
	p.doc.SetFont(fontFamily, "", 10)

	rows := [][2]string{
		{"Receitas", report.FormatBRL(s.Income)},
		{"Despesas (transações)", report.FormatBRL(s.TransactionExpenses)},
		{"Despesas fixas", report.FormatBRL(s.DedicatedExpenses)},
		{"Total de despesas", report.FormatBRL(s.TotalExpenses)},
		{"Dízimos", report.FormatBRL(s.Tithes)},
		{"Ofertas", report.FormatBRL(s.Offerings)},
		{"Votos", report.FormatBRL(s.Vows)},
		{"Total contribuído", report.FormatBRL(s.TotalGiven)},
	}
	for i, r := range rows {
		p.row(r[:], widths, "LR", i%2 == 1)
	}

	p.doc.SetFont(fontFamily, "B", 10)
	p.row([]string{"Saldo do mês", report.FormatBRL(s.Net)}, widths, "LR", false)
	p.doc.Ln(4)
}

func (p *renderer) fidelity(f report.Fidelity) {
	p.sectionTitle("Fidelidade nos Dízimos")
	p.doc.SetFont(fontFamily, "", 10)
	p.doc.MultiCell(contentW, lineHeight, p.tr(f.Message), "", "L", false)
	p.doc.Ln(3)
}

func (p *renderer) categories(entries []metrics.SeriesEntry) {
	p.sectionTitle("Despesas por Categoria")
	p.doc.SetFont(fontFamily, "", 10)

	if len(entries) == 0 {
		p.doc.CellFormat(contentW, lineHeight, p.tr("Nenhuma despesa registrada."), "", 1, "L", false, 0, "")
		p.doc.Ln(3)
		return
	}

	widths := []float64{contentW * 0.5, contentW * 0.3, contentW * 0.2}
	p.doc.SetFont(fontFamily, "B", 10)
	p.row([]string{"Categoria", "Valor", "%"}, widths, "LRR", true)
	p.doc.SetFont(fontFamily, "", 10)
	for _, e := range entries {
		p.row([]string{e.Name, report.FormatBRL(e.Value), report.FormatPercent(e.Percentage)}, widths, "LRR", false)
	}
	p.doc.Ln(4)
}

func (p *renderer) goals(r report.MonthlyReport) {
	p.sectionTitle("Metas")
	p.doc.SetFont(fontFamily, "", 10)

	if len(r.Goals) == 0 {
		p.doc.CellFormat(contentW, lineHeight, p.tr("Nenhuma meta cadastrada."), "", 1, "L", false, 0, "")
		p.doc.Ln(3)
		return
	}

	widths := []float64{contentW * 0.3, contentW * 0.18, contentW * 0.18, contentW * 0.12, contentW * 0.12, contentW * 0.1}
	p.doc.SetFont(fontFamily, "B", 9)
	p.row([]string{"Meta", "Atual", "Alvo", "Progresso", "Prazo", "Urgência"}, widths, "LRRRCC", true)
	p.doc.SetFont(fontFamily, "", 9)
	for _, g := range r.Goals {
		p.row([]string{
			truncate(g.Title, 32),
			report.FormatBRL(g.CurrentAmount),
			report.FormatBRL(g.TargetAmount),
			report.FormatPercent(g.ProgressPct),
			g.Deadline,
			urgencyLabels[string(g.UrgencyLevel)],
		}, widths, "LRRRCC", false)
	}
	p.doc.Ln(4)
}

func (p *renderer) assessment(text string) {
	p.sectionTitle("Avaliação Espiritual")
	p.doc.SetFont(fontFamily, "", 10)
	p.doc.MultiCell(contentW, lineHeight, p.tr(text), "", "J", false)
	p.doc.Ln(3)
}

func (p *renderer) actionItems(items []string) {
	p.sectionTitle("Próximos Passos")
	p.doc.SetFont(fontFamily, "", 10)
	for i, item := range items {
		p.doc.MultiCell(contentW, lineHeight, p.tr(fmt.Sprintf("%d. %s", i+1, item)), "", "L", false)
	}
}

func truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max-1]) + "…"
}
