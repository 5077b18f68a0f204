package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestFormatDSN(t *testing.T) {
	dsn := FormatDSN(Config{
		Host:     "db",
		Port:     "5433",
		User:     "mordomia",
		Password: "p@ss word",
		Name:     "finance",
		SSLMode:  "disable",
	})

	want := "postgres://mordomia:p%40ss%20word@db:5433/finance?sslmode=disable"
	if dsn != want {
		t.Errorf("FormatDSN() = %q, want %q", dsn, want)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")

	cfg := ConfigFromEnv()
	if cfg.Host != "localhost" || cfg.Port != "5432" || cfg.SSLMode != "disable" {
		t.Errorf("ConfigFromEnv() = %+v, want localhost:5432 sslmode=disable", cfg)
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatalf("MigrationNames() error = %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded migrations")
	}

	body, err := migrations.ReadFile("migrations/" + names[0])
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	for _, table := range []string{"users", "transactions", "expenses", "tithings", "goals", "banks", "account_balances", "investments", "cards"} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("migration does not create table %s", table)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("IsUniqueViolation(23505) = false")
	}
	if IsUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("IsUniqueViolation(23503) = true")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("IsUniqueViolation(plain error) = true")
	}
}
