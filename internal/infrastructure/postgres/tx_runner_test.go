package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Registro-api/internal/domain"
	"github.com/jhoicas/Registro-api/internal/domain/repository"
)

func newMockRunner(t *testing.T) (pgxmock.PgxPoolIface, *TxRunner) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewTxRunner(mock)
}

func TestTxRunner_CommitEnExito(t *testing.T) {
	mock, runner := newMockRunner(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE empresas SET last_login = \$2 WHERE ruc = \$1`).
		WithArgs("20123456789", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := runner.Run(context.Background(), func(repo repository.EmpresaRepository) error {
		return repo.UpdateLastLogin(context.Background(), "20123456789", at)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "callback sin error debe terminar en Commit")
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	// El insert choca contra el constraint único dentro de la tx: debe salir
	// el conflicto y la transacción debe terminar en Rollback, no en Commit.
	mock, runner := newMockRunner(t)
	e := testEmpresa()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO empresas`).
		WithArgs(e.ID, e.RUC, e.RazonSocial, e.NombreComercial, e.Estado, e.Condicion,
			e.Direccion, e.Departamento, e.Provincia, e.Distrito, e.Email, e.PasswordHash,
			e.IsActive, e.CreatedAt, e.LastLogin).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "empresas_ruc_key"})
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(repo repository.EmpresaRepository) error {
		return repo.Create(context.Background(), e)
	})
	assert.ErrorIs(t, err, domain.ErrRUCAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet(), "error del callback debe terminar en Rollback")
}

func TestTxRunner_RollbackEnCallbackQueNoTocaLaDB(t *testing.T) {
	mock, runner := newMockRunner(t)
	fallo := errors.New("regla de negocio violada")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(repository.EmpresaRepository) error {
		return fallo
	})
	assert.ErrorIs(t, err, fallo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_BeginFallido(t *testing.T) {
	mock, runner := newMockRunner(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := runner.Run(context.Background(), func(repository.EmpresaRepository) error {
		t.Error("el callback no debe ejecutarse si Begin falla")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}
