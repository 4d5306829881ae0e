package dto

import (
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

// UserResponse represents a staff account in API responses.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(u *userDomain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: string(u.Status),
	}
}

// ListUsersResponse represents a list of accounts in API responses.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts domain users to a list API response.
func MapUsersToListResponse(users []*userDomain.User) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, MapUserToResponse(u))
	}
	return ListUsersResponse{Data: data}
}
