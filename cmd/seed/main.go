package main

import (
	"errors"
	"flag"
	"fmt"
	"mordomia/database/postgres"
	"mordomia/internal/api/auth"
	authRepository "mordomia/internal/api/auth/repository"
	authService "mordomia/internal/api/auth/service"
	"mordomia/internal/api/bank"
	bankRepository "mordomia/internal/api/bank/repository"
	bankService "mordomia/internal/api/bank/service"
	"mordomia/internal/api/finance"
	financeRepository "mordomia/internal/api/finance/repository"
	financeService "mordomia/internal/api/finance/service"
	"mordomia/internal/api/goal"
	goalRepository "mordomia/internal/api/goal/repository"
	goalService "mordomia/internal/api/goal/service"
	"mordomia/internal/entity"
	"mordomia/pkg/bcrypt"
	"mordomia/pkg/log"
	"mordomia/pkg/utils"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var (
	expenseCategories = []string{"Alimentação", "Transporte", "Lazer", "Saúde", "Educação", "Vestuário"}
	paymentTypes      = []string{"pix", "credito", "debito", "moeda", "boleto"}
	bankNames         = []string{"Banco do Brasil", "Caixa", "Nubank", "Itaú", "Bradesco", "Inter"}
	churches          = []string{"Igreja Batista Central", "Assembleia de Deus", "Igreja Presbiteriana", "Comunidade da Graça"}
)

type seeder struct {
	log     *logrus.Logger
	faker   *gofakeit.Faker
	userID  string
	months  int
	now     time.Time
	finance financeService.IFinanceService
	banks   bankService.IBankService
	goals   goalService.IGoalService
}

func main() {
	email := flag.String("email", "demo@mordomia.app", "demo account email")
	password := flag.String("password", "mordomia123", "demo account password")
	months := flag.Int("months", 6, "months of history to generate")
	seed := flag.Int64("seed", 0, "random seed, 0 for a time based one")
	flag.Parse()

	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	db, err := postgres.New()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	u := utils.New()
	ctx := context.Background()

	authRepo := authRepository.New(db, logger)
	users := authService.New(logger, authRepo, nil, nil, bcrypt.New(), u).User()

	user, err := users.RegisterUser(ctx, auth.CreateUserRequest{
		Name:     gofakeit.Name(),
		Email:    *email,
		Password: *password,
	})
	if errors.Is(err, auth.ErrEmailAlreadyExists) {
		user, err = users.GetByEmail(ctx, *email)
	}
	if err != nil {
		logger.Fatalf("Failed to prepare demo user: %v", err)
	}

	bankRepo := bankRepository.New(db, logger)
	s := &seeder{
		log:     logger,
		faker:   gofakeit.New(*seed),
		userID:  user.ID,
		months:  *months,
		now:     time.Now(),
		finance: financeService.NewFinanceService(logger, financeRepository.New(db, logger), bankRepo, u, nil),
		banks:   bankService.NewBankService(logger, bankRepo, u, nil),
		goals:   goalService.NewGoalService(logger, goalRepository.New(db, logger), u, nil),
	}

	if err := s.run(ctx); err != nil {
		logger.Fatalf("Seeding failed: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"email":  *email,
		"months": *months,
	}).Info("Demo data created")
}

func (s *seeder) run(ctx context.Context) error {
	bankIDs, err := s.seedBanks(ctx)
	if err != nil {
		return fmt.Errorf("banks: %w", err)
	}

	for i := s.months - 1; i >= 0; i-- {
		monthStart := time.Date(s.now.Year(), s.now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		if err := s.seedMonth(ctx, monthStart, bankIDs); err != nil {
			return fmt.Errorf("month %s: %w", monthStart.Format(entity.MonthLayout), err)
		}
	}

	if err := s.seedGoals(ctx); err != nil {
		return fmt.Errorf("goals: %w", err)
	}
	return nil
}

func (s *seeder) seedBanks(ctx context.Context) ([]string, error) {
	count := s.faker.Number(1, 2)
	ids := make([]string, 0, count)

	for i := 0; i < count; i++ {
		b, err := s.banks.CreateBank(ctx, bank.CreateBankRequest{
			UserID:        s.userID,
			Name:          s.faker.RandomString(bankNames),
			Agency:        fmt.Sprintf("%04d", s.faker.Number(1, 9999)),
			AccountHolder: s.faker.Name(),
		})
		if err != nil {
			return nil, err
		}

		opening := time.Date(s.now.Year(), s.now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -s.months, 0)
		if _, err := s.banks.RecordBalance(ctx, bank.CreateBalanceRequest{
			BankID:  b.ID,
			UserID:  s.userID,
			Balance: s.faker.Price(500, 5000),
			Date:    entity.FormatDate(opening),
			Notes:   "Saldo inicial",
		}); err != nil {
			return nil, err
		}

		ids = append(ids, b.ID)
	}

	return ids, nil
}

// seedMonth writes a salary, a handful of expenses, a fixed rent bill and
// the month's giving. Future days of the current month are skipped.
func (s *seeder) seedMonth(ctx context.Context, monthStart time.Time, bankIDs []string) error {
	salary := s.faker.Price(3000, 9000)
	salaryDay := s.dateIn(monthStart, 5)

	if _, err := s.finance.CreateTransaction(ctx, finance.TransactionRequest{
		UserID:            s.userID,
		Type:              string(entity.TransactionTypeIncome),
		Amount:            salary,
		Description:       "Salário " + s.faker.Company(),
		Category:          "Salário",
		Date:              salaryDay,
		PaymentType:       "pix",
		DestinationBankID: bankIDs[0],
	}); err != nil {
		return err
	}

	for i := 0; i < s.faker.Number(4, 9); i++ {
		req := finance.TransactionRequest{
			UserID:      s.userID,
			Type:        string(entity.TransactionTypeExpense),
			Amount:      s.faker.Price(15, 400),
			Description: s.faker.Sentence(3),
			Category:    s.faker.RandomString(expenseCategories),
			Date:        s.dateIn(monthStart, s.faker.Number(1, 28)),
			PaymentType: s.faker.RandomString(paymentTypes),
		}
		if s.faker.Bool() {
			req.DestinationBankID = bankIDs[s.faker.Number(0, len(bankIDs)-1)]
		}
		if _, err := s.finance.CreateTransaction(ctx, req); err != nil {
			return err
		}
	}

	billingDay := 10
	status := entity.ExpenseStatusPaid
	if monthStart.Month() == s.now.Month() && monthStart.Year() == s.now.Year() {
		status = entity.ExpenseStatusPending
	}
	if _, err := s.finance.CreateExpense(ctx, finance.ExpenseRequest{
		UserID:      s.userID,
		Name:        "Aluguel",
		Amount:      s.faker.Price(800, 2000),
		Category:    "Moradia",
		Date:        s.dateIn(monthStart, billingDay),
		Status:      string(status),
		BillingType: string(entity.BillingTypeMonthly),
		BillingDay:  &billingDay,
	}); err != nil {
		return err
	}

	church := s.faker.RandomString(churches)

	// most months are faithful, some fall short
	titheShare := 0.10
	if s.faker.Number(1, 4) == 1 {
		titheShare = s.faker.Float64Range(0.02, 0.08)
	}
	if _, err := s.finance.CreateTithing(ctx, finance.TithingRequest{
		UserID: s.userID,
		Amount: float64(int(salary*titheShare*100)) / 100,
		Church: church,
		Date:   salaryDay,
		Type:   string(entity.TithingTypeTithe),
	}); err != nil {
		return err
	}

	if s.faker.Bool() {
		if _, err := s.finance.CreateTithing(ctx, finance.TithingRequest{
			UserID: s.userID,
			Amount: s.faker.Price(20, 200),
			Church: church,
			Date:   s.dateIn(monthStart, s.faker.Number(1, 28)),
			Type:   string(entity.TithingTypeOffering),
			Notes:  "Oferta de missões",
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *seeder) seedGoals(ctx context.Context) error {
	goals := []struct {
		title    string
		category entity.GoalCategory
		months   int
	}{
		{"Viagem missionária", entity.GoalCategoryMission, 4},
		{"Reserva de emergência", entity.GoalCategoryPersonal, 12},
		{"Curso de teologia", entity.GoalCategoryStudy, 1},
	}

	for _, g := range goals {
		target := s.faker.Price(1000, 10000)
		if _, err := s.goals.CreateGoal(ctx, goal.GoalRequest{
			UserID:        s.userID,
			Title:         g.title,
			Category:      string(g.category),
			TargetAmount:  target,
			CurrentAmount: float64(int(target*s.faker.Float64Range(0, 0.7)*100)) / 100,
			Deadline:      entity.FormatDate(s.now.AddDate(0, g.months, 0)),
			Notes:         s.faker.Sentence(6),
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *seeder) dateIn(monthStart time.Time, day int) string {
	d := monthStart.AddDate(0, 0, day-1)
	if d.After(s.now) {
		d = s.now
	}
	return entity.FormatDate(d)
}
