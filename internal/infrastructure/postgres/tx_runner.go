package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Registro-api/internal/application/auth"
	"github.com/jhoicas/Registro-api/internal/domain/repository"
)

// TxBeginner abre transacciones. Lo satisfacen *pgxpool.Pool y el pool de
// pgxmock, lo que permite testear Run sin una base de datos.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Asegura que TxRunner implementa auth.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner sobre un abridor de transacciones.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con un repo atado a la tx y hace
// Commit o Rollback. En cualquier salida con error no sobrevive fila parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.EmpresaRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmpresaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
