package finance

type TransactionRequest struct {
	ID                string  `json:"-"`
	UserID            string  `json:"-"`
	Type              string  `json:"type" validate:"required,oneof=income expense"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Description       string  `json:"description" validate:"max=500"`
	Category          string  `json:"category" validate:"required,max=100"`
	Date              string  `json:"date" validate:"required,date"`
	PaymentType       string  `json:"payment_type" validate:"required,oneof=pix credito debito moeda boleto"`
	DestinationBankID string  `json:"destination_bank_id" validate:"omitempty,len=26"`
}

type TransactionFilter struct {
	UserID   string `query:"-"`
	Month    string `query:"month" validate:"omitempty,month"`
	Type     string `query:"type" validate:"omitempty,oneof=income expense"`
	Category string `query:"category" validate:"max=100"`
}

type TransactionResponse struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Date              string  `json:"date"`
	PaymentType       string  `json:"payment_type"`
	DestinationBankID string  `json:"destination_bank_id,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type TransactionTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Totals TransactionTotals     `json:"totals"`
}

type ExpenseRequest struct {
	ID           string  `json:"-"`
	UserID       string  `json:"-"`
	Name         string  `json:"name" validate:"required,max=255"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Category     string  `json:"category" validate:"required,max=100"`
	Date         string  `json:"date" validate:"required,date"`
	Status       string  `json:"status" validate:"required,oneof=paid pending"`
	BillingType  string  `json:"billing_type" validate:"required,oneof=unique monthly yearly"`
	BillingDay   *int    `json:"billing_day" validate:"omitempty,min=1,max=31"`
	BillingMonth *int    `json:"billing_month" validate:"omitempty,min=1,max=12"`
}

type ExpenseStatusRequest struct {
	ID     string `json:"-"`
	UserID string `json:"-"`
	Status string `json:"status" validate:"required,oneof=paid pending"`
}

type MonthFilter struct {
	UserID string `query:"-"`
	Month  string `query:"month" validate:"omitempty,month"`
}

type ExpenseResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	BillingType  string  `json:"billing_type"`
	BillingDay   *int    `json:"billing_day,omitempty"`
	BillingMonth *int    `json:"billing_month,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ExpenseTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Total   float64 `json:"total"`
}

type ExpenseListResponse struct {
	Items  []ExpenseResponse `json:"items"`
	Totals ExpenseTotals     `json:"totals"`
}

type TithingRequest struct {
	ID     string  `json:"-"`
	UserID string  `json:"-"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Church string  `json:"church" validate:"required,max=255"`
	Date   string  `json:"date" validate:"required,date"`
	Type   string  `json:"type" validate:"required,oneof=tithe offering vow"`
	Notes  string  `json:"notes" validate:"max=1000"`
}

type TithingResponse struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Church    string  `json:"church"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type TithingTotals struct {
	Tithes    float64 `json:"tithes"`
	Offerings float64 `json:"offerings"`
	Vows      float64 `json:"vows"`
	Total     float64 `json:"total"`
}

type TithingListResponse struct {
	Items  []TithingResponse `json:"items"`
	Totals TithingTotals     `json:"totals"`
}
