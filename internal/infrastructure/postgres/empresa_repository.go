package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Registro-api/internal/domain"
	"github.com/jhoicas/Registro-api/internal/domain/entity"
	"github.com/jhoicas/Registro-api/internal/domain/repository"
)

// DBTX abstrae *pgxpool.Pool, pgx.Tx y el mock de pgxmock; permite usar el
// mismo repo fuera y dentro de una transacción.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	db DBTX
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(db DBTX) *EmpresaRepo {
	return &EmpresaRepo{db: db}
}

const empresaColumns = `id, ruc, razon_social, nombre_comercial, estado, condicion,
		direccion, departamento, provincia, distrito, email, password_hash,
		is_active, created_at, last_login`

// Create persiste una nueva empresa. Una violación del constraint único de
// ruc o email se mapea al error de conflicto correspondiente: la tabla es el
// punto de verdad ante registros concurrentes, no el pre-chequeo.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (` + empresaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.RUC, e.RazonSocial, e.NombreComercial, e.Estado, e.Condicion,
		e.Direccion, e.Departamento, e.Provincia, e.Distrito, e.Email, e.PasswordHash,
		e.IsActive, e.CreatedAt, e.LastLogin,
	)
	if err != nil {
		if pgErr := uniqueViolation(err); pgErr != nil {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domain.ErrEmailAlreadyExists
			}
			return domain.ErrRUCAlreadyExists
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByRUC obtiene una empresa por RUC. Devuelve (nil, nil) si no existe.
func (r *EmpresaRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE ruc = $1`
	e, err := r.scanOne(r.db.QueryRow(ctx, query, ruc))
	if err != nil {
		return nil, fmt.Errorf("get empresa by ruc: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene una empresa por email. Devuelve (nil, nil) si no existe.
func (r *EmpresaRepo) GetByEmail(ctx context.Context, email string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE email = $1`
	e, err := r.scanOne(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("get empresa by email: %w", err)
	}
	return e, nil
}

// UpdateLastLogin registra el último inicio de sesión.
func (r *EmpresaRepo) UpdateLastLogin(ctx context.Context, ruc string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE empresas SET last_login = $2 WHERE ruc = $1`, ruc, at)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

func (r *EmpresaRepo) scanOne(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(
		&e.ID, &e.RUC, &e.RazonSocial, &e.NombreComercial, &e.Estado, &e.Condicion,
		&e.Direccion, &e.Departamento, &e.Provincia, &e.Distrito, &e.Email, &e.PasswordHash,
		&e.IsActive, &e.CreatedAt, &e.LastLogin,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
