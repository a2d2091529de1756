package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse éxito de login. El token también viaja en la cookie `token`.
type LoginResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserInfoDTO `json:"user"`
}

// UserInfoDTO identidad expuesta por /api/auth/me.
type UserInfoDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
