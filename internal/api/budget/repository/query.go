package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			trip_id,
			travel_cost,
			hotel_cost,
			food_cost,
			extra_cost,
			total_budget,
			notes,
			created_at
		) VALUES (
			:trip_id,
			:travel_cost,
			:hotel_cost,
			:food_cost,
			:extra_cost,
			:total_budget,
			:notes,
			:created_at
		)
		RETURNING id
	`

	queryGetTripOwner = `
		SELECT user_id
		FROM trips
		WHERE id = :id
	`
)
