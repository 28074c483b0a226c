package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			trip_id,
			category,
			amount,
			description,
			created_at
		) VALUES (
			:trip_id,
			:category,
			:amount,
			:description,
			:created_at
		)
		RETURNING id
	`

	queryGetBudgetTotalByTripID = `
		SELECT total_budget
		FROM budgets
		WHERE trip_id = :trip_id
		ORDER BY created_at
		LIMIT 1
	`

	querySumExpensesByTripID = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE trip_id = :trip_id
	`

	queryGetTripOwner = `
		SELECT user_id
		FROM trips
		WHERE id = :id
	`
)
