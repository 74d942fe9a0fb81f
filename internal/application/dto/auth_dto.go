package dto

import (
	"time"

	"github.com/jhoicas/Registro-api/internal/domain/entity"
)

// ValidateRucRequest entrada para validar un RUC contra SUNAT.
type ValidateRucRequest struct {
	RUC string `json:"ruc" validate:"required,len=11,numeric"`
}

// RegisterRequest entrada para registrar una empresa (password en texto, se hashea en use case).
type RegisterRequest struct {
	RUC      string `json:"ruc" validate:"required,len=11,numeric"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse salida de registro: solo identidad y razón social, no el registro completo.
type RegisterResponse struct {
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razon_social"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse salida de login con el bearer token firmado.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
	ExpiresIn   int    `json:"expires_in"` // segundos
}

// RucDataResponse proyección del resultado de la consulta RUC.
type RucDataResponse struct {
	RUC             string  `json:"ruc"`
	RazonSocial     string  `json:"razon_social"`
	NombreComercial *string `json:"nombre_comercial,omitempty"`
	Estado          string  `json:"estado"`
	Condicion       string  `json:"condicion"`
	Direccion       *string `json:"direccion,omitempty"`
	Departamento    *string `json:"departamento,omitempty"`
	Provincia       *string `json:"provincia,omitempty"`
	Distrito        *string `json:"distrito,omitempty"`
}

// EmpresaResponse proyección de solo lectura de la empresa (sin password hash).
type EmpresaResponse struct {
	RUC             string     `json:"ruc"`
	RazonSocial     string     `json:"razon_social"`
	NombreComercial *string    `json:"nombre_comercial,omitempty"`
	Email           string     `json:"email"`
	Estado          string     `json:"estado"`
	Condicion       string     `json:"condicion"`
	Direccion       *string    `json:"direccion,omitempty"`
	Departamento    *string    `json:"departamento,omitempty"`
	Provincia       *string    `json:"provincia,omitempty"`
	Distrito        *string    `json:"distrito,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}

// FromRucData arma la proyección de una consulta RUC.
func FromRucData(d *entity.RucData) *RucDataResponse {
	if d == nil {
		return nil
	}
	return &RucDataResponse{
		RUC:             d.RUC,
		RazonSocial:     d.RazonSocial,
		NombreComercial: d.NombreComercial,
		Estado:          d.Estado,
		Condicion:       d.Condicion,
		Direccion:       d.Direccion,
		Departamento:    d.Departamento,
		Provincia:       d.Provincia,
		Distrito:        d.Distrito,
	}
}

// FromEmpresa arma la proyección pública de una empresa.
func FromEmpresa(e *entity.Empresa) *EmpresaResponse {
	if e == nil {
		return nil
	}
	return &EmpresaResponse{
		RUC:             e.RUC,
		RazonSocial:     e.RazonSocial,
		NombreComercial: e.NombreComercial,
		Email:           e.Email,
		Estado:          e.Estado,
		Condicion:       e.Condicion,
		Direccion:       e.Direccion,
		Departamento:    e.Departamento,
		Provincia:       e.Provincia,
		Distrito:        e.Distrito,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		LastLogin:       e.LastLogin,
	}
}
