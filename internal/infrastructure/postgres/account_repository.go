package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
// El roster se reemplaza completo en una transacción; la columna position
// conserva el orden canónico de la colección.
type AccountRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool, tx *TxRunner) *AccountRepo {
	return &AccountRepo{pool: pool, tx: tx}
}

// List devuelve el roster en su orden canónico.
func (r *AccountRepo) List() ([]entity.Account, error) {
	query := `
		SELECT id, name, initials, role, password, color, created_at, updated_at
		FROM accounts ORDER BY position`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Initials, &a.Role, &a.Password, &a.Color, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ReplaceAll reemplaza el roster completo preservando el orden recibido.
func (r *AccountRepo) ReplaceAll(accounts []entity.Account) error {
	return r.tx.Run(context.Background(), func(tx pgx.Tx) error {
		ctx := context.Background()
		if _, err := tx.Exec(ctx, `DELETE FROM accounts`); err != nil {
			return fmt.Errorf("clear accounts: %w", err)
		}
		query := `
			INSERT INTO accounts (id, position, name, initials, role, password, color, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		for i, a := range accounts {
			if _, err := tx.Exec(ctx, query,
				a.ID, i, a.Name, a.Initials, a.Role, a.Password, a.Color, a.CreatedAt, a.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert account %s: %w", a.ID, err)
			}
		}
		return nil
	})
}
