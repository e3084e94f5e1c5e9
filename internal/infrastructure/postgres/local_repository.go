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

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo adaptador PostgreSQL para sucursales.
type LocalRepo struct {
	q Querier
}

func NewLocalRepository(q Querier) *LocalRepo {
	return &LocalRepo{q: q}
}

func (r *LocalRepo) Create(ctx context.Context, l *entity.Local) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	query := `
		INSERT INTO locales (id, nombre, direccion, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, l.ID, l.Nombre, l.Direccion, l.Telefono, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create local: %w", err)
	}
	return nil
}

func (r *LocalRepo) GetByID(ctx context.Context, id string) (*entity.Local, error) {
	query := `
		SELECT id, nombre, direccion, telefono, created_at, updated_at
		FROM locales WHERE id = $1`
	var l entity.Local
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.Nombre, &l.Direccion, &l.Telefono, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local: %w", err)
	}
	return &l, nil
}

func (r *LocalRepo) List(ctx context.Context) ([]*entity.Local, error) {
	query := `
		SELECT id, nombre, direccion, telefono, created_at, updated_at
		FROM locales
		ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar locales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Local
	for rows.Next() {
		var l entity.Local
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Direccion, &l.Telefono, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan local: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
