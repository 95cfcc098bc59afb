package entity

import "time"

type Author struct {
	ID        string    `db:"id"`
	FirstName string    `db:"fname"`
	LastName  string    `db:"lname"`
	Title     string    `db:"title"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
