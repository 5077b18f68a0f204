package reportService

import (
	"fmt"
	"mordomia/internal/api/report"
	"mordomia/pkg/metrics"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	assessmentSourceRules  = "rules"
	assessmentSourceGemini = "gemini"

	assessmentTimeout = 15 * time.Second
	highSpendingRatio = 0.9
	maxGoalItems      = 3
)

func ruleAssessment(r report.MonthlyReport) string {
	s := r.Summary
	var parts []string

	switch r.Fidelity.Level {
	case report.FidelityFaithful:
		parts = append(parts, "Você foi fiel nos dízimos este mês, honrando ao Senhor com as primícias da sua renda.")
	case report.FidelityPartial:
		parts = append(parts, fmt.Sprintf("Seus dízimos somaram %s, %s da renda. Busque alcançar a fidelidade plena.",
			report.FormatBRL(s.Tithes), report.FormatPercent(r.Fidelity.Percentage)))
	case report.FidelityNone:
		parts = append(parts, "Não houve registro de dízimo neste mês. Reflita sobre como devolver ao Senhor a primeira parte do que Ele confiou a você.")
	default:
		parts = append(parts, "Não houve receita registrada neste mês, então não é possível avaliar a fidelidade nos dízimos.")
	}

	switch {
	case s.Net > 0:
		parts = append(parts, fmt.Sprintf("O mês terminou com saldo positivo de %s, sinal de boa administração.", report.FormatBRL(s.Net)))
	case s.Net < 0:
		parts = append(parts, fmt.Sprintf("O mês terminou com saldo negativo de %s; as saídas superaram as entradas.", report.FormatBRL(-s.Net)))
	default:
		parts = append(parts, "Entradas e saídas ficaram equilibradas neste mês.")
	}

	if s.Income > 0 && s.TotalExpenses/s.Income > highSpendingRatio {
		parts = append(parts, "As despesas consumiram mais de 90% da renda, deixando pouca margem para poupar e contribuir.")
	}

	if s.Offerings > 0 || s.Vows > 0 {
		parts = append(parts, fmt.Sprintf("Além do dízimo, você ofertou %s com generosidade.", report.FormatBRL(s.Offerings+s.Vows)))
	}

	return strings.Join(parts, " ")
}

func actionItems(r report.MonthlyReport) []string {
	s := r.Summary
	items := make([]string, 0)

	if r.Fidelity.Level == report.FidelityNone || r.Fidelity.Level == report.FidelityPartial {
		target := metrics.Round2(s.Income * titheTargetPct / 100)
		items = append(items, fmt.Sprintf("Separe o dízimo (%s) assim que receber a renda.", report.FormatBRL(target)))
	}

	if s.Net < 0 && len(r.ExpenseCategories.Entries) > 0 {
		top := r.ExpenseCategories.Entries[0]
		items = append(items, fmt.Sprintf("Revise os gastos com %s, a maior categoria do mês (%s).", top.Name, report.FormatBRL(top.Value)))
	}

	if s.PendingExpenses > 0 {
		items = append(items, fmt.Sprintf("Quite as despesas pendentes, que somam %s.", report.FormatBRL(s.PendingExpenses)))
	}

	goalItems := 0
	for _, g := range r.Goals {
		if goalItems == maxGoalItems {
			break
		}
		switch g.UrgencyLevel {
		case metrics.UrgencyCritical:
			items = append(items, fmt.Sprintf("Reavalie a meta \"%s\": o prazo já venceu.", g.Title))
			goalItems++
		case metrics.UrgencyHigh:
			if g.RemainingAmount > 0 {
				items = append(items, fmt.Sprintf("Priorize a meta \"%s\": faltam %s em %d dias.", g.Title, report.FormatBRL(g.RemainingAmount), g.DaysRemaining))
				goalItems++
			}
		}
	}

	if s.Net > 0 && len(r.Goals) > 0 && goalItems == 0 {
		items = append(items, "Direcione parte do saldo positivo para as suas metas.")
	}

	if len(items) == 0 {
		items = append(items, "Continue registrando suas movimentações com fidelidade e constância.")
	}

	return items
}

func assessmentPrompt(r report.MonthlyReport) string {
	s := r.Summary
	var sb strings.Builder

	sb.WriteString("Você é um conselheiro financeiro cristão. Escreva uma avaliação espiritual curta ")
	sb.WriteString("(no máximo 5 frases, em português do Brasil, sem listas e sem markdown) ")
	sb.WriteString("sobre a mordomia financeira do mês ")
	sb.WriteString(r.Month)
	sb.WriteString(", com base nestes números:\n")
	fmt.Fprintf(&sb, "- Receitas: %s\n", report.FormatBRL(s.Income))
	fmt.Fprintf(&sb, "- Despesas: %s (pendentes: %s)\n", report.FormatBRL(s.TotalExpenses), report.FormatBRL(s.PendingExpenses))
	fmt.Fprintf(&sb, "- Dízimos: %s (%s da renda)\n", report.FormatBRL(s.Tithes), report.FormatPercent(r.Fidelity.Percentage))
	fmt.Fprintf(&sb, "- Ofertas e votos: %s\n", report.FormatBRL(s.Offerings+s.Vows))
	fmt.Fprintf(&sb, "- Saldo do mês: %s\n", report.FormatBRL(s.Net))
	for _, e := range r.ExpenseCategories.Entries {
		fmt.Fprintf(&sb, "- Categoria de despesa %s: %s\n", e.Name, report.FormatBRL(e.Value))
	}
	fmt.Fprintf(&sb, "Versículo do mês: %s (%s).", r.Scripture.Text, r.Scripture.Reference)

	return sb.String()
}

// applyAIAssessment swaps in model-written prose when a model is configured.
// Any failure keeps the rule-based text.
func (s *reportService) applyAIAssessment(ctx context.Context, r *report.MonthlyReport, requestID string) {
	if s.gemini == nil {
		return
	}

	c, cancel := context.WithTimeout(ctx, assessmentTimeout)
	defer cancel()

	text, err := s.gemini.GenerateText(c, assessmentPrompt(*r))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      r.Month,
			"error":      err.Error(),
		}).Warn("AI assessment failed, using rule-based text")
		return
	}

	r.Assessment = text
	r.AssessmentSource = assessmentSourceGemini
}
