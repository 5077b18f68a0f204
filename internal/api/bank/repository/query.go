package bankRepository

const (
	queryCreateBank = `
		INSERT INTO banks (
			id,
			user_id,
			name,
			agency,
			account_holder,
			investments_info,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:agency,
			:account_holder,
			:investments_info,
			:created_at,
			:updated_at
		)
	`

	queryGetBankByID = `
		SELECT
			id,
			user_id,
			name,
			agency,
			account_holder,
			investments_info,
			created_at,
			updated_at
		FROM banks
		WHERE id = :id
	`

	queryGetBanksByUserID = `
		SELECT
			id,
			user_id,
			name,
			agency,
			account_holder,
			investments_info,
			created_at,
			updated_at
		FROM banks
		WHERE user_id = :user_id
		ORDER BY name ASC
	`

	queryUpdateBank = `
		UPDATE banks
		SET
			name = :name,
			agency = :agency,
			account_holder = :account_holder,
			investments_info = :investments_info,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBank = `
		DELETE FROM banks
		WHERE id = :id
	`

	queryCreateBalance = `
		INSERT INTO account_balances (
			id,
			bank_id,
			balance,
			date,
			notes,
			created_at
		) VALUES (
			:id,
			:bank_id,
			:balance,
			:date,
			:notes,
			:created_at
		)
	`

	queryGetBalancesByBankID = `
		SELECT
			id,
			bank_id,
			balance,
			date,
			notes,
			created_at
		FROM account_balances
		WHERE bank_id = :bank_id
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryGetBalancesByUserID = `
		SELECT
			ab.id,
			ab.bank_id,
			ab.balance,
			ab.date,
			ab.notes,
			ab.created_at
		FROM account_balances ab
		JOIN banks b ON b.id = ab.bank_id
		WHERE b.user_id = :user_id
		ORDER BY ab.date DESC, ab.created_at DESC, ab.id DESC
	`

	queryCreateInvestment = `
		INSERT INTO investments (
			id,
			bank_id,
			type,
			initial_value,
			final_value,
			period_type,
			start_date,
			end_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:bank_id,
			:type,
			:initial_value,
			:final_value,
			:period_type,
			:start_date,
			:end_date,
			:created_at,
			:updated_at
		)
	`

	queryGetInvestmentByID = `
		SELECT
			id,
			bank_id,
			type,
			initial_value,
			final_value,
			period_type,
			start_date,
			end_date,
			created_at,
			updated_at
		FROM investments
		WHERE id = :id
	`

	queryGetInvestmentsByBankID = `
		SELECT
			id,
			bank_id,
			type,
			initial_value,
			final_value,
			period_type,
			start_date,
			end_date,
			created_at,
			updated_at
		FROM investments
		WHERE bank_id = :bank_id
		ORDER BY start_date DESC
	`

	queryUpdateInvestment = `
		UPDATE investments
		SET
			type = :type,
			initial_value = :initial_value,
			final_value = :final_value,
			period_type = :period_type,
			start_date = :start_date,
			end_date = :end_date,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteInvestment = `
		DELETE FROM investments
		WHERE id = :id
	`

	queryCreateCard = `
		INSERT INTO cards (
			id,
			bank_id,
			type,
			expiry_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:bank_id,
			:type,
			:expiry_date,
			:created_at,
			:updated_at
		)
	`

	queryGetCardByID = `
		SELECT
			id,
			bank_id,
			type,
			expiry_date,
			created_at,
			updated_at
		FROM cards
		WHERE id = :id
	`

	queryGetCardsByBankID = `
		SELECT
			id,
			bank_id,
			type,
			expiry_date,
			created_at,
			updated_at
		FROM cards
		WHERE bank_id = :bank_id
		ORDER BY expiry_date DESC
	`

	queryUpdateCard = `
		UPDATE cards
		SET
			type = :type,
			expiry_date = :expiry_date,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCard = `
		DELETE FROM cards
		WHERE id = :id
	`
)
