package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo adaptador PostgreSQL para empleados.
type EmpleadoRepo struct {
	q Querier
}

func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

func (r *EmpleadoRepo) Create(ctx context.Context, e *entity.Empleado) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO empleados (id, local_id, email, password_hash, nombre, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.LocalID, e.Email, e.PasswordHash, e.Nombre, e.Rol, e.Activo, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create empleado: %w", err)
	}
	return nil
}

func (r *EmpleadoRepo) GetByID(ctx context.Context, id string) (*entity.Empleado, error) {
	return r.getBy(ctx, "id", id)
}

// FindByEmail devuelve nil sin error cuando el email no está registrado,
// para que el login no filtre qué emails existen.
func (r *EmpleadoRepo) FindByEmail(ctx context.Context, email string) (*entity.Empleado, error) {
	return r.getBy(ctx, "email", email)
}

func (r *EmpleadoRepo) getBy(ctx context.Context, col, val string) (*entity.Empleado, error) {
	query := fmt.Sprintf(`
		SELECT id, local_id, email, password_hash, nombre, rol, activo, created_at, updated_at
		FROM empleados WHERE %s = $1`, col)
	var e entity.Empleado
	err := r.q.QueryRow(ctx, query, val).Scan(
		&e.ID, &e.LocalID, &e.Email, &e.PasswordHash, &e.Nombre, &e.Rol, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}
