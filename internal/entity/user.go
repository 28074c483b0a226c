package entity

import "time"

type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// UserLoginData is the identity decoded from the access token and stored in
// the request locals by the token middleware.
type UserLoginData struct {
	ID int64
}
