package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCliente UserRole = "cliente"
)

// User is the authenticated identity. Admin users manage every record;
// cliente users are scoped to the single client they belong to.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	Nome            string    `json:"nome"`
	Role            UserRole  `json:"role"`
	ClienteID       *string   `json:"cliente_id,omitempty" gorm:"index"`
	SenhaHash       string    `json:"-"`
	EmailConfirmado bool      `json:"email_confirmado" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }
