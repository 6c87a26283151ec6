package dto

import "time"

// SignupRequest entrada de registro. Role vacío = Employee.
type SignupRequest struct {
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"`
}

// AccountResponse salida de una cuenta (sin hash).
type AccountResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse token de sesión más el estado inicial de la sesión.
type LoginResponse struct {
	Token           string          `json:"token"`
	ExpiresAt       time.Time       `json:"expires_at"`
	Session         SessionResponse `json:"session"`
	DatasetRestored bool            `json:"dataset_restored"` // se recuperó el dataset guardado
}

// SessionResponse vista de la sesión actual.
type SessionResponse struct {
	SessionID   string    `json:"session_id"`
	LoggedIn    bool      `json:"logged_in"`
	CurrentUser string    `json:"current_user"`
	Role        string    `json:"role"`
	HasDataset  bool      `json:"has_dataset"`
	Rows        int       `json:"rows"`
	ExpiresAt   time.Time `json:"expires_at"`
}
