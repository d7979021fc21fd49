package domain

import "time"

type UserRole string

const (
	RoleCustomer     UserRole = "customer"
	RoleReceptionist UserRole = "receptionist"
	RoleManager      UserRole = "manager"
)

func (r UserRole) IsStaff() bool {
	return r == RoleReceptionist || r == RoleManager
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
