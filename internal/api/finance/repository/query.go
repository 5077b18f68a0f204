package financeRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			type,
			amount,
			description,
			category,
			date,
			payment_type,
			destination_bank_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:type,
			:amount,
			:description,
			:category,
			:date,
			:payment_type,
			:destination_bank_id,
			:created_at,
			:updated_at
		)
	`

	querySelectTransactions = `
		SELECT
			id,
			user_id,
			type,
			amount,
			description,
			category,
			date,
			payment_type,
			destination_bank_id,
			created_at,
			updated_at
		FROM transactions
	`

	queryGetTransactionByID = querySelectTransactions + `WHERE id = :id`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			amount = :amount,
			description = :description,
			category = :category,
			date = :date,
			payment_type = :payment_type,
			destination_bank_id = :destination_bank_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `DELETE FROM transactions WHERE id = :id`

	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			name,
			amount,
			category,
			date,
			status,
			billing_type,
			billing_day,
			billing_month,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:amount,
			:category,
			:date,
			:status,
			:billing_type,
			:billing_day,
			:billing_month,
			:created_at,
			:updated_at
		)
	`

	querySelectExpenses = `
		SELECT
			id,
			user_id,
			name,
			amount,
			category,
			date,
			status,
			billing_type,
			billing_day,
			billing_month,
			created_at,
			updated_at
		FROM expenses
	`

	queryGetExpenseByID = querySelectExpenses + `WHERE id = :id`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			name = :name,
			amount = :amount,
			category = :category,
			date = :date,
			status = :status,
			billing_type = :billing_type,
			billing_day = :billing_day,
			billing_month = :billing_month,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateExpenseStatus = `
		UPDATE expenses
		SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteExpense = `DELETE FROM expenses WHERE id = :id`

	queryCreateTithing = `
		INSERT INTO tithings (
			id,
			user_id,
			amount,
			church,
			date,
			type,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:church,
			:date,
			:type,
			:notes,
			:created_at,
			:updated_at
		)
	`

	querySelectTithings = `
		SELECT
			id,
			user_id,
			amount,
			church,
			date,
			type,
			notes,
			created_at,
			updated_at
		FROM tithings
	`

	queryGetTithingByID = querySelectTithings + `WHERE id = :id`

	queryUpdateTithing = `
		UPDATE tithings
		SET
			amount = :amount,
			church = :church,
			date = :date,
			type = :type,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTithing = `DELETE FROM tithings WHERE id = :id`

	// Most recent first; created_at keeps same-day records stable.
	orderMostRecent = ` ORDER BY date DESC, created_at DESC`
)
