package tripRepository

const (
	queryCreateTrip = `
		INSERT INTO trips (
			user_id,
			destination,
			start_date,
			end_date,
			purpose,
			companions,
			notes,
			created_at
		) VALUES (
			:user_id,
			:destination,
			:start_date,
			:end_date,
			:purpose,
			:companions,
			:notes,
			:created_at
		)
		RETURNING id
	`

	queryGetTripByIDAndUser = `
		SELECT
			id,
			user_id,
			destination,
			start_date,
			end_date,
			purpose,
			companions,
			notes,
			created_at
		FROM trips
		WHERE id = :id AND user_id = :user_id
	`

	queryCountTripsByUser = `
		SELECT COUNT(*) AS total
		FROM trips
		WHERE user_id = :user_id
	`

	queryDeleteBudgetsByTripID = `
		DELETE FROM budgets
		WHERE trip_id = :trip_id
	`

	queryDeleteLocationsByTripID = `
		DELETE FROM locations
		WHERE trip_id = :trip_id
	`

	queryDeleteExpensesByTripID = `
		DELETE FROM expenses
		WHERE trip_id = :trip_id
	`

	queryDeleteTrip = `
		DELETE FROM trips
		WHERE id = :id
	`
)
