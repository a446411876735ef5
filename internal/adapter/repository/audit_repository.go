package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/audit"
)

// AuditRepository implementa la interfaz audit.Repository
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository crea una nueva instancia de AuditRepository
func NewAuditRepository(db *pgxpool.Pool) audit.Repository {
	return &AuditRepository{
		db: db,
	}
}

// Create implementa audit.Repository.Create
func (r *AuditRepository) Create(ctx context.Context, rec *audit.Record) error {
	var meta []byte
	if rec.Meta != nil {
		var err error
		meta, err = json.Marshal(rec.Meta)
		if err != nil {
			return fmt.Errorf("error al serializar metadatos: %w", err)
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_records (
			id, actor_id, action, entity_type, entity_id, meta, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.ActorID, rec.Action, rec.EntityType, rec.EntityID,
		meta, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al registrar auditoría: %w", err)
	}

	return nil
}

// FindByEntity implementa audit.Repository.FindByEntity
func (r *AuditRepository) FindByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]*audit.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, actor_id, action, entity_type, entity_id, meta, created_at
		FROM audit_records
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		entityType, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar auditoría: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

// List implementa audit.Repository.List
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]*audit.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, actor_id, action, entity_type, entity_id, meta, created_at
		FROM audit_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar auditoría: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

// scanAuditRows procesa resultados con múltiples entradas de auditoría
func scanAuditRows(rows pgx.Rows) ([]*audit.Record, error) {
	records := make([]*audit.Record, 0)

	for rows.Next() {
		var rec audit.Record
		var meta []byte
		err := rows.Scan(&rec.ID, &rec.ActorID, &rec.Action, &rec.EntityType,
			&rec.EntityID, &meta, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer auditoría: %w", err)
		}

		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &rec.Meta); err != nil {
				return nil, fmt.Errorf("error al leer metadatos: %w", err)
			}
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return records, nil
}
