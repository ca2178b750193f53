package models

// User is a credential record. Users are provisioned out of band; the API
// only reads them.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
