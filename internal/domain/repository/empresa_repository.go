package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Registro-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// Los lookups devuelven (nil, nil) cuando no hay fila.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error)
	GetByEmail(ctx context.Context, email string) (*entity.Empresa, error)
	// UpdateLastLogin registra el último inicio de sesión; el caller decide
	// si un fallo aquí es fatal (para login no lo es).
	UpdateLastLogin(ctx context.Context, ruc string, at time.Time) error
}
