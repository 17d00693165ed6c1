package model

import "time"

// UserRole distinguishes ordering customers from restaurant admins.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	Name         string
	Phone        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}

// Address is a delivery destination, snapshotted onto orders at checkout.
type Address struct {
	Street       string
	City         string
	State        string
	ZipCode      string
	Instructions string
}
