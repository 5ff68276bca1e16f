package domain

type User struct {
	ID          string
	Name        string
	Email       string
	Nationality string
}
