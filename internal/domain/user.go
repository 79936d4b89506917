package domain

import (
	"time"

	"github.com/google/uuid"
)

// User-related domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrAlreadyRegistered  = &Error{Code: ECONFLICT, Message: "You have already registered"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid credentials"}
)

// Role identifies what a caller is allowed to do.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a registered account. Admins manage the catalog and orders;
// customers own carts and place orders.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Role returns the authorization role derived from the admin flag.
func (u *User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}
