package entity

import "time"

// User represents an account row in the relational store. The role decides
// which downstream entities may reference the user: only creators own
// videos, only admins review content reports.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	LastName         string    `json:"last_name"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"password_hash"`
	RegistrationDate time.Time `json:"registration_date"`
	ProfilePicURL    string    `json:"profile_pic_url"`
	Role             Role      `json:"role"`
	BirthDate        time.Time `json:"birth_date"`
}
