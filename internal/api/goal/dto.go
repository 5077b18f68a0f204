package goal

type GoalRequest struct {
	ID            string  `json:"-"`
	UserID        string  `json:"-"`
	Title         string  `json:"title" validate:"required,max=255"`
	Category      string  `json:"category" validate:"required,oneof=mission personal study debt giving"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
	Deadline      string  `json:"deadline" validate:"required,date"`
	Notes         string  `json:"notes" validate:"max=1000"`
}

type ProgressRequest struct {
	ID     string  `json:"-"`
	UserID string  `json:"-"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// RemoveProgressRequest must carry Confirm when the amount would clear the
// goal's saved progress.
type RemoveProgressRequest struct {
	ID      string  `json:"-"`
	UserID  string  `json:"-"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Confirm bool    `json:"confirm"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	ProgressPct   float64 `json:"progress_pct"`
	Deadline      string  `json:"deadline"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
