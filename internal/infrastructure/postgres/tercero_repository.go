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

var (
	_ repository.ProveedorRepository = (*ProveedorRepo)(nil)
	_ repository.ClienteRepository   = (*ClienteRepo)(nil)
)

// ProveedorRepo adaptador PostgreSQL para proveedores.
type ProveedorRepo struct {
	q Querier
}

func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO proveedores (id, nombre, nit, telefono, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.NIT, p.Telefono, p.Email, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	query := `SELECT id, nombre, nit, telefono, email, created_at FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.NIT, &p.Telefono, &p.Email, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) List(ctx context.Context) ([]*entity.Proveedor, error) {
	query := `SELECT id, nombre, nit, telefono, email, created_at FROM proveedores ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.NIT, &p.Telefono, &p.Email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ClienteRepo adaptador PostgreSQL para clientes.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clientes (id, nombre, documento, telefono, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Documento, c.Telefono, c.Email, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `SELECT id, nombre, documento, telefono, email, created_at FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre, &c.Documento, &c.Telefono, &c.Email, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT id, nombre, documento, telefono, email, created_at FROM clientes ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Documento, &c.Telefono, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
