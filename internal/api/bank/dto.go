package bank

type CreateBankRequest struct {
	UserID          string `json:"-"`
	Name            string `json:"name" validate:"required,max=255"`
	Agency          string `json:"agency" validate:"max=50"`
	AccountHolder   string `json:"account_holder" validate:"max=255"`
	InvestmentsInfo string `json:"investments_info"`
}

type UpdateBankRequest struct {
	ID              string `json:"-"`
	UserID          string `json:"-"`
	Name            string `json:"name" validate:"required,max=255"`
	Agency          string `json:"agency" validate:"max=50"`
	AccountHolder   string `json:"account_holder" validate:"max=255"`
	InvestmentsInfo string `json:"investments_info"`
}

type BankResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Agency          string   `json:"agency"`
	AccountHolder   string   `json:"account_holder"`
	InvestmentsInfo string   `json:"investments_info,omitempty"`
	LatestBalance   *float64 `json:"latest_balance"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type BankListResponse struct {
	Banks       []BankResponse `json:"banks"`
	BankedTotal float64        `json:"banked_total"`
}

type CreateBalanceRequest struct {
	BankID  string  `json:"-"`
	UserID  string  `json:"-"`
	Balance float64 `json:"balance"`
	Date    string  `json:"date" validate:"required,date"`
	Notes   string  `json:"notes"`
}

type BalanceResponse struct {
	ID        string  `json:"id"`
	BankID    string  `json:"bank_id"`
	Balance   float64 `json:"balance"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type InvestmentRequest struct {
	ID           string   `json:"-"`
	BankID       string   `json:"-"`
	UserID       string   `json:"-"`
	Type         string   `json:"type" validate:"required,max=100"`
	InitialValue float64  `json:"initial_value" validate:"gte=0"`
	FinalValue   *float64 `json:"final_value" validate:"omitempty,gte=0"`
	PeriodType   string   `json:"period_type" validate:"required,oneof=periodico permanente"`
	StartDate    string   `json:"start_date" validate:"required,date"`
	EndDate      string   `json:"end_date" validate:"omitempty,date"`
}

type InvestmentResponse struct {
	ID           string   `json:"id"`
	BankID       string   `json:"bank_id"`
	Type         string   `json:"type"`
	InitialValue float64  `json:"initial_value"`
	FinalValue   *float64 `json:"final_value,omitempty"`
	PeriodType   string   `json:"period_type"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type CardRequest struct {
	ID         string `json:"-"`
	BankID     string `json:"-"`
	UserID     string `json:"-"`
	Type       string `json:"type" validate:"required,oneof=debito credito"`
	ExpiryDate string `json:"expiry_date" validate:"required,date"`
}

type CardResponse struct {
	ID         string `json:"id"`
	BankID     string `json:"bank_id"`
	Type       string `json:"type"`
	ExpiryDate string `json:"expiry_date"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
