// Package domain defines staff user accounts as listed by the remote records API.
package domain

import "strings"

// Status is the activation state of a staff account.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Statuses lists every account status.
var Statuses = []string{string(StatusActive), string(StatusInactive)}

// ParseStatus validates a status value. Matching is exact.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusActive, StatusInactive:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// User is a staff account.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status Status `json:"status"`
}

// Matches reports whether name, email or role contains search, case-insensitively.
func (u *User) Matches(search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	for _, field := range []string{u.Name, u.Email, u.Role} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Search returns the users matching term, preserving order.
func Search(users []*User, term string) []*User {
	filtered := make([]*User, 0, len(users))
	for _, u := range users {
		if u.Matches(term) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
