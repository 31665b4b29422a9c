// Package models contains data models for the auth service.
package models

// User represents a registered account in the users_login table.
// PasswordHash is never serialized in responses.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	LoginCount   int64  `json:"login_count" gorm:"not null;default:0"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users_login"
}
