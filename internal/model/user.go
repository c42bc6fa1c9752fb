package model

import "time"

// Role 區分帳號種類，與 users.role CHECK 一致
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
