package users

import "github.com/angelmondragon/pantry-backend/pkg/db/models"

// UserDTO is the user payload returned to clients.
type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserDTO(u *models.User) *UserDTO {
	return &UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
