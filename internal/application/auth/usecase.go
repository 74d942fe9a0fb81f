package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Registro-api/internal/application/dto"
	"github.com/jhoicas/Registro-api/internal/application/ports"
	"github.com/jhoicas/Registro-api/internal/domain"
	"github.com/jhoicas/Registro-api/internal/domain/entity"
	"github.com/jhoicas/Registro-api/internal/domain/repository"
	"github.com/jhoicas/Registro-api/pkg/jwt"
	"github.com/jhoicas/Registro-api/pkg/logger"
	"github.com/jhoicas/Registro-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// TxRunner ejecuta fn dentro de una transacción con un repo atado a la tx.
// Si fn devuelve error se hace rollback; ninguna fila parcial sobrevive.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.EmpresaRepository) error) error
}

// UseCase casos de uso de onboarding y autenticación de empresas:
// validación de RUC, registro, login y perfil.
type UseCase struct {
	empresaRepo repository.EmpresaRepository
	tx          TxRunner
	rucLookup   ports.RucLookupService
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(empresaRepo repository.EmpresaRepository, tx TxRunner, rucLookup ports.RucLookupService, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{
		empresaRepo: empresaRepo,
		tx:          tx,
		rucLookup:   rucLookup,
		jwtCfg:      jwtCfg,
		log:         log,
	}
}

// ValidateRUC consulta el RUC en SUNAT y devuelve los datos normalizados.
func (uc *UseCase) ValidateRUC(ctx context.Context, ruc string) (*dto.RucDataResponse, error) {
	data, err := uc.rucLookup.Lookup(ctx, ruc)
	if err != nil {
		return nil, err
	}
	return dto.FromRucData(data), nil
}

// Register registra una nueva empresa:
//
//  1. Valida el RUC con SUNAT (el fallo más barato de atribuir al usuario).
//  2. Verifica la política de onboarding: ACTIVO y HABIDO.
//  3. Verifica unicidad de RUC y email y crea la empresa, todo dentro de
//     una transacción. El constraint único de la tabla es el punto de
//     verdad ante registros concurrentes: un 23505 en el insert se mapea
//     al mismo error de conflicto que el pre-chequeo.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	data, err := uc.rucLookup.Lookup(ctx, in.RUC)
	if err != nil {
		return nil, err
	}

	if !data.IsActivaHabida() {
		return nil, fmt.Errorf("%w. Estado: %s, Condición: %s",
			domain.ErrEmpresaNotActive, data.Estado, data.Condicion)
	}

	var out *dto.RegisterResponse
	err = uc.tx.Run(ctx, func(repo repository.EmpresaRepository) error {
		existing, err := repo.GetByRUC(ctx, in.RUC)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrRUCAlreadyExists
		}

		existing, err = repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}

		hash, err := password.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		empresa := &entity.Empresa{
			ID:              uuid.New().String(),
			RUC:             data.RUC,
			RazonSocial:     data.RazonSocial,
			NombreComercial: data.NombreComercial,
			Estado:          data.Estado,
			Condicion:       data.Condicion,
			Direccion:       data.Direccion,
			Departamento:    data.Departamento,
			Provincia:       data.Provincia,
			Distrito:        data.Distrito,
			Email:           in.Email,
			PasswordHash:    hash,
			IsActive:        true,
			CreatedAt:       time.Now(),
		}
		if err := repo.Create(ctx, empresa); err != nil {
			return err
		}
		out = &dto.RegisterResponse{RUC: empresa.RUC, RazonSocial: empresa.RazonSocial}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifica email/password, actualiza last_login y genera el JWT.
// Email desconocido y password incorrecto devuelven el mismo error para no
// filtrar cuál de los dos campos falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	empresa, err := uc.empresaRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, empresa.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !empresa.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	// Best-effort: un fallo al persistir last_login no bloquea la emisión
	// del token (decisión de producto heredada del comportamiento actual).
	if err := uc.empresaRepo.UpdateLastLogin(ctx, empresa.RUC, time.Now()); err != nil {
		uc.log.Warn().Err(err).Str("ruc", empresa.RUC).Msg("no se pudo actualizar last_login")
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, empresa.RUC, empresa.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.jwtCfg.ExpHours * 3600,
	}, nil
}

// Profile devuelve la proyección pública de la empresa autenticada.
// El RUC llega de los claims del bearer token ya verificado por el
// middleware de auth; un RUC vacío es un token sin identidad.
func (uc *UseCase) Profile(ctx context.Context, ruc string) (*dto.EmpresaResponse, error) {
	if ruc == "" {
		return nil, domain.ErrInvalidToken
	}

	empresa, err := uc.empresaRepo.GetByRUC(ctx, ruc)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	return dto.FromEmpresa(empresa), nil
}

// IsConflict agrupa los errores de unicidad de registro.
func IsConflict(err error) bool {
	return errors.Is(err, domain.ErrRUCAlreadyExists) || errors.Is(err, domain.ErrEmailAlreadyExists)
}
