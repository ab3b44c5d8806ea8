package dto

type RegisterRequest struct {
	FullName        string   `json:"fullName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,password"`
	PreferredTopics []string `json:"preferredTopics" validate:"omitempty,dive,required"`
}

// RegisterResponse never carries the password.
type RegisterResponse struct {
	Message         string   `json:"message"`
	ID              int64    `json:"id"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	PreferredTopics []string `json:"preferredTopics"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
