package models

import (
	"time"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullname" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null"`
	Year      string    `json:"year" gorm:"default:''"`
	Branch    string    `json:"branch" gorm:"default:''"`
	Bio       string    `json:"bio" gorm:"type:varchar(500);default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
