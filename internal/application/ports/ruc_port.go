package ports

import (
	"context"

	"github.com/jhoicas/Registro-api/internal/domain/entity"
)

// RucLookupService puerto para la consulta de un RUC en el padrón de SUNAT.
// La implementación valida el formato, llama al servicio externo y normaliza
// la respuesta. Errores de red, timeouts y RUC inexistente se reportan como
// domain.ErrRUCValidation; no se reintenta en este componente.
type RucLookupService interface {
	Lookup(ctx context.Context, ruc string) (*entity.RucData, error)
}
