package goalRepository

const (
	queryCreateGoal = `
		INSERT INTO goals (
			id,
			user_id,
			title,
			category,
			target_amount,
			current_amount,
			deadline,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:category,
			:target_amount,
			:current_amount,
			:deadline,
			:notes,
			:created_at,
			:updated_at
		)
	`

	querySelectGoal = `
		SELECT
			id,
			user_id,
			title,
			category,
			target_amount,
			current_amount,
			deadline,
			notes,
			created_at,
			updated_at
		FROM goals
	`

	queryGetGoalByID = querySelectGoal + ` WHERE id = :id`

	queryGetGoalsByUser = querySelectGoal + ` WHERE user_id = :user_id ORDER BY deadline ASC, created_at ASC`

	queryUpdateGoal = `
		UPDATE goals
		SET
			title = :title,
			category = :category,
			target_amount = :target_amount,
			current_amount = :current_amount,
			deadline = :deadline,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateGoalProgress = `
		UPDATE goals
		SET
			current_amount = :current_amount,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteGoal = `
		DELETE FROM goals
		WHERE id = :id
	`
)
