package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
// Categorías y etiquetas viven en tablas separadas; las etiquetas llevan
// position para conservar el orden de inserción (duplicados permitidos).
type LocationRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(pool *pgxpool.Pool, tx *TxRunner) *LocationRepo {
	return &LocationRepo{pool: pool, tx: tx}
}

// List devuelve las categorías con sus etiquetas en orden de inserción.
func (r *LocationRepo) List() ([]entity.LocationCategory, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM location_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list location categories: %w", err)
	}
	defer rows.Close()

	var list []entity.LocationCategory
	index := make(map[string]int)
	for rows.Next() {
		var c entity.LocationCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan location category: %w", err)
		}
		index[c.ID] = len(list)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slotRows, err := r.pool.Query(ctx, `SELECT category_id, label FROM location_slots ORDER BY category_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list location slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var categoryID, label string
		if err := slotRows.Scan(&categoryID, &label); err != nil {
			return nil, fmt.Errorf("scan location slot: %w", err)
		}
		if i, ok := index[categoryID]; ok {
			list[i].Slots = append(list[i].Slots, label)
		}
	}
	return list, slotRows.Err()
}

// ReplaceAll reemplaza el catálogo completo en una transacción.
func (r *LocationRepo) ReplaceAll(categories []entity.LocationCategory) error {
	return r.tx.Run(context.Background(), func(tx pgx.Tx) error {
		ctx := context.Background()
		if _, err := tx.Exec(ctx, `DELETE FROM location_slots`); err != nil {
			return fmt.Errorf("clear location slots: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM location_categories`); err != nil {
			return fmt.Errorf("clear location categories: %w", err)
		}
		for i, c := range categories {
			if _, err := tx.Exec(ctx,
				`INSERT INTO location_categories (id, position, name) VALUES ($1, $2, $3)`,
				c.ID, i, c.Name,
			); err != nil {
				return fmt.Errorf("insert location category %s: %w", c.ID, err)
			}
			for j, label := range c.Slots {
				if _, err := tx.Exec(ctx,
					`INSERT INTO location_slots (category_id, position, label) VALUES ($1, $2, $3)`,
					c.ID, j, label,
				); err != nil {
					return fmt.Errorf("insert location slot %q: %w", label, err)
				}
			}
		}
		return nil
	})
}
