package mapsRepository

const (
	queryCreateLocation = `
		INSERT INTO locations (trip_id, latitude, longitude, notes, created_at)
		VALUES (:trip_id, :latitude, :longitude, :notes, :created_at)
		RETURNING id
	`

	queryListLocationsByTrip = `
		SELECT id, trip_id, latitude, longitude, notes, created_at
		FROM locations
		WHERE trip_id = :trip_id
		ORDER BY created_at ASC
	`

	queryGetTripOwner = `
		SELECT user_id
		FROM trips
		WHERE id = :trip_id
	`
)
