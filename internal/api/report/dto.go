package report

import "mordomia/pkg/metrics"

type MonthQuery struct {
	UserID   string `query:"-"`
	UserName string `query:"-"`
	Month    string `query:"month" validate:"required,month"`
}

type DashboardQuery struct {
	UserID string `query:"-"`
	Months int    `query:"months" validate:"omitempty,min=1,max=24"`
}

type Summary struct {
	Income              float64 `json:"income"`
	TransactionExpenses float64 `json:"transaction_expenses"`
	DedicatedExpenses   float64 `json:"dedicated_expenses"`
	TotalExpenses       float64 `json:"total_expenses"`
	PendingExpenses     float64 `json:"pending_expenses"`
	Tithes              float64 `json:"tithes"`
	Offerings           float64 `json:"offerings"`
	Vows                float64 `json:"vows"`
	TotalGiven          float64 `json:"total_given"`
	Net                 float64 `json:"net"`
}

type FidelityLevel string

const (
	FidelityFaithful FidelityLevel = "faithful"
	FidelityPartial  FidelityLevel = "partial"
	FidelityNone     FidelityLevel = "none"
	FidelityNoIncome FidelityLevel = "no_income"
)

type Fidelity struct {
	Percentage float64       `json:"percentage"`
	Level      FidelityLevel `json:"level"`
	Message    string        `json:"message"`
}

type Scripture struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

type TransactionLine struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type TithingLine struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Church string  `json:"church"`
	Amount float64 `json:"amount"`
}

// MonthlyReport is everything a rendered monthly report needs.
type MonthlyReport struct {
	Month             string                   `json:"month"`
	GeneratedAt       string                   `json:"generated_at"`
	UserName          string                   `json:"user_name,omitempty"`
	Summary           Summary                  `json:"summary"`
	Fidelity          Fidelity                 `json:"fidelity"`
	ExpenseCategories metrics.ChartSeries      `json:"expense_categories"`
	IncomeCategories  metrics.ChartSeries      `json:"income_categories"`
	Transactions      []TransactionLine        `json:"transactions"`
	Tithings          []TithingLine            `json:"tithings"`
	Goals             []metrics.GoalProjection `json:"goals"`
	Scripture         Scripture                `json:"scripture"`
	Assessment        string                   `json:"assessment"`
	AssessmentSource  string                   `json:"assessment_source"`
	ActionItems       []string                 `json:"action_items"`
}

type Dashboard struct {
	Months            int                      `json:"months"`
	CurrentMonth      string                   `json:"current_month"`
	TotalIncome       float64                  `json:"total_income"`
	TotalExpense      float64                  `json:"total_expense"`
	BasicBalance      float64                  `json:"basic_balance"`
	BankedTotal       float64                  `json:"banked_total"`
	UnbankedBalance   float64                  `json:"unbanked_balance"`
	NetBalance        float64                  `json:"net_balance"`
	MonthSummary      Summary                  `json:"month_summary"`
	Fidelity          Fidelity                 `json:"fidelity"`
	IncomeCategories  metrics.ChartSeries      `json:"income_categories"`
	ExpenseCategories metrics.ChartSeries      `json:"expense_categories"`
	TithingBreakdown  metrics.ChartSeries      `json:"tithing_breakdown"`
	Trend             []metrics.MonthTrend     `json:"trend"`
	Goals             []metrics.GoalProjection `json:"goals"`
}

type ArchiveResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
