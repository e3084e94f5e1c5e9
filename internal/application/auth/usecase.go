package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
	"github.com/dquintero/farmacia-erp/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de empleados.
type AuthUseCase struct {
	empleadoRepo repository.EmpleadoRepository
	localRepo    repository.LocalRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(empleadoRepo repository.EmpleadoRepository, localRepo repository.LocalRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{empleadoRepo: empleadoRepo, localRepo: localRepo, jwtCfg: jwtCfg}
}

// RegistrarEmpleado crea un empleado: hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicado si el email ya existe.
func (uc *AuthUseCase) RegistrarEmpleado(ctx context.Context, in dto.RegistrarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Email == "" || in.Password == "" || in.LocalID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.empleadoRepo.FindByEmail(ctx, in.Email)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	local, err := uc.localRepo.GetByID(ctx, in.LocalID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	now := time.Now()
	empleado := &entity.Empleado{
		ID:           uuid.New().String(),
		LocalID:      in.LocalID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.empleadoRepo.Create(ctx, empleado); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// Login verifica email/password, genera JWT y retorna token + empleado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	empleado, err := uc.empleadoRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrEmpleadoNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empleado.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !empleado.Activo {
		return nil, domain.ErrAccesoDenegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, empleado.ID, empleado.LocalID, empleado.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Empleado: *toEmpleadoResponse(empleado)}, nil
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleadoResponse{
		ID:        e.ID,
		LocalID:   e.LocalID,
		Email:     e.Email,
		Nombre:    e.Nombre,
		Rol:       e.Rol,
		CreatedAt: e.CreatedAt,
	}
}
