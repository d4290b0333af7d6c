package models

import (
	"fmt"
	"net/url"
)

// Session is the signed-in identity of the running console.
type Session struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Avatar       string `json:"avatar"`
}

// AvatarURL returns the placeholder avatar seeded by username.
func AvatarURL(username string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", url.PathEscape(username))
}

// NewSession derives a Session from a directory account.
func NewSession(a Account) *Session {
	return &Session{
		ID:           a.Username,
		Name:         a.AdminName,
		Role:         a.Role,
		Email:        a.Email,
		Organization: a.OrgName,
		Avatar:       AvatarURL(a.Username),
	}
}
