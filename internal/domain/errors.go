package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrBadPassword      = errors.New("contraseña incorrecta")
	ErrUsernameTaken    = errors.New("el nombre de usuario ya está en uso")
	ErrPasswordMismatch = errors.New("las contraseñas no coinciden")
	ErrParse            = errors.New("archivo de datos inválido")
	ErrValidation       = errors.New("entrada inválida")
	ErrIO               = errors.New("error de escritura en disco")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrSessionNotFound  = errors.New("sesión no encontrada o expirada")

	// ErrDatasetNotReady no es un fallo: indica que aún no se ha cargado un dataset
	// y bloquea las páginas que dependen de él.
	ErrDatasetNotReady = errors.New("no hay dataset cargado")
)
