package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// mapean a códigos de estado; los use cases los envuelven con %w cuando
// necesitan añadir detalle (ej. estado y condición observados).
var (
	ErrInvalidRUC         = errors.New("RUC inválido")
	ErrRUCValidation      = errors.New("error al validar RUC")
	ErrEmpresaNotActive   = errors.New("la empresa debe estar ACTIVA y HABIDA")
	ErrRUCAlreadyExists   = errors.New("el RUC ya está registrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrAccountDisabled    = errors.New("la cuenta está desactivada")
	ErrEmpresaNotFound    = errors.New("empresa no encontrada")
)
