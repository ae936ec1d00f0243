package dto

import "laborlink/internal/domain/user"

// UserResponse is the only shape a user ever leaves the API in, single,
// listed or nested. It has no password field at all, so redaction cannot be
// forgotten on any path.
type UserResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	UserType    string   `json:"user_type"`
	Location    string   `json:"location,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Skills      []string `json:"skills"`
	Avatar      string   `json:"avatar,omitempty"`
	Title       string   `json:"title,omitempty"`
	Rating      *int     `json:"rating"`
	ReviewCount int      `json:"review_count"`
}

func FromUser(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		UserType:    string(u.Type),
		Location:    u.Location,
		Bio:         u.Bio,
		Phone:       u.Phone,
		Skills:      skills,
		Avatar:      u.Avatar,
		Title:       u.Title,
		Rating:      u.Rating,
		ReviewCount: u.ReviewCount,
	}
}

func FromUsers(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
