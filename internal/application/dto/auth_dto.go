package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// SessionUser identidad expuesta al cliente tras autenticarse.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse respuesta de login y de sesión de invitado.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}

// PinRequest cuerpo de verificación/configuración de PIN (4 dígitos).
type PinRequest struct {
	Pin string `json:"pin" validate:"required,len=4"`
}

// PinVerifyResponse respuesta de verificación de PIN.
type PinVerifyResponse struct {
	Success   bool  `json:"success"`
	Timestamp int64 `json:"timestamp"`
}
