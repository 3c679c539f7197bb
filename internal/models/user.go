package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents the users table. RefreshToken holds the single active
// refresh token; NULL means the user is logged out.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:191" json:"email"`
	PasswordHash string    `gorm:"column:password;not null;size:255" json:"-"`
	Role         string    `gorm:"type:enum('admin','user');default:'user'" json:"role"`
	RefreshToken *string   `gorm:"type:text" json:"refreshToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// PublicUser is the user shape returned to clients.
type PublicUser struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role,omitempty"`
	RefreshToken *string `json:"refreshToken,omitempty"`
}

// Public strips the password hash and refresh token.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
