package models

type RegisterRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin student faculty"`
	Year     string `json:"year" validate:"omitempty,oneof=FE SE TE BE"`
	Branch   string `json:"branch" validate:"omitempty,oneof=Computer IT Mechanical Electrical ENTC"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Bio      string `json:"bio" validate:"max=500"`
	Year     string `json:"year" validate:"omitempty,oneof=FE SE TE BE"`
	Branch   string `json:"branch" validate:"omitempty,oneof=Computer IT Mechanical Electrical ENTC"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
