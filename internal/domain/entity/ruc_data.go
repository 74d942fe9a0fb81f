package entity

// Vocabulario SUNAT que este sistema interpreta. La política de onboarding
// exige ambas igualdades exactas; son dos campos independientes, no un
// código combinado.
const (
	EstadoActivo    = "ACTIVO"
	CondicionHabido = "HABIDO"
)

// RucData es el resultado normalizado de una consulta RUC a SUNAT.
// Es transitorio: se produce fresco en cada validación y no se persiste.
type RucData struct {
	RUC             string
	RazonSocial     string
	NombreComercial *string
	Estado          string
	Condicion       string
	Direccion       *string
	Departamento    *string
	Provincia       *string
	Distrito        *string
}

// IsActivaHabida indica si la empresa está habilitada para el onboarding:
// estado ACTIVO y condición HABIDO, ambos como igualdad exacta.
func (d RucData) IsActivaHabida() bool {
	return d.Estado == EstadoActivo && d.Condicion == CondicionHabido
}
