// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// Demo account every new session starts with
const (
	DemoUserID    = "demo-user-001"
	DemoUserName  = "Demo User"
	DemoUserEmail = "demo@hfashion.com"
	demoAvatar    = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100"
)

var demoCreatedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// User represents the shopper profile attached to a session
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Demo returns the demo profile
func Demo() *User {
	return &User{
		ID:        DemoUserID,
		Name:      DemoUserName,
		Email:     DemoUserEmail,
		Avatar:    demoAvatar,
		CreatedAt: demoCreatedAt,
		UpdatedAt: demoCreatedAt,
	}
}

// FirstName returns the first word of the name
func (u *User) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(u.Name), " ")
	return first
}

// GetDisplayName returns display name (name or email)
func (u *User) GetDisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}
