package entity

import "time"

// Empresa representa una empresa registrada en el sistema (onboarding Perú).
// El RUC es la identidad de negocio: único e inmutable después de la creación.
type Empresa struct {
	ID              string
	RUC             string // RUC peruano, 11 dígitos
	RazonSocial     string
	NombreComercial *string // nil = SUNAT no reporta nombre comercial
	Estado          string  // estado del contribuyente según SUNAT (ACTIVO, SUSPENDIDO, BAJA...)
	Condicion       string  // condición del domicilio según SUNAT (HABIDO, NO HABIDO...)
	Direccion       *string
	Departamento    *string
	Provincia       *string
	Distrito        *string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive        bool   // controla elegibilidad de login, independiente del estado SUNAT
	CreatedAt       time.Time
	LastLogin       *time.Time // nil = nunca inició sesión
}
