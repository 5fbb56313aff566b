package dto

import (
	"time"

	"github.com/kishoreadhith-v/clubs-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         string    `json:"id"`
	RollNo     string    `json:"rollno"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse is returned by login
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID.Hex(),
		RollNo:     user.RollNo,
		Name:       user.Name,
		Phone:      user.Phone,
		Department: user.Department,
		Year:       user.Year,
		CreatedAt:  user.CreatedAt,
	}
}
