package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// Asegura que SettingsRepo implementa repository.SettingsRepository.
var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La configuración vive en una única fila (id = 1) que se reemplaza entera.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de persistencia de configuración.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get devuelve la configuración confirmada, o nil si todavía no se sembró.
func (r *SettingsRepo) Get() (*entity.SystemConfig, error) {
	query := `
		SELECT company_name, company_slogan, address, phone, registration_number,
		       tax_rate, invoice_prefix, next_invoice_number, currency, currency_symbol,
		       timezone, language, theme,
		       show_qr, show_address, show_phone, auto_print, updated_at
		FROM system_config WHERE id = 1`
	var c entity.SystemConfig
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&c.CompanyName, &c.CompanySlogan, &c.Address, &c.Phone, &c.RegistrationNumber,
		&c.TaxRate, &c.InvoicePrefix, &c.NextInvoiceNumber, &c.Currency, &c.CurrencySymbol,
		&c.Timezone, &c.Language, &c.Theme,
		&c.ShowQR, &c.ShowAddress, &c.ShowPhone, &c.AutoPrint, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system config: %w", err)
	}
	return &c, nil
}

// Replace reemplaza la fila singleton de forma atómica (upsert por id fijo).
func (r *SettingsRepo) Replace(cfg entity.SystemConfig) error {
	query := `
		INSERT INTO system_config (
			id, company_name, company_slogan, address, phone, registration_number,
			tax_rate, invoice_prefix, next_invoice_number, currency, currency_symbol,
			timezone, language, theme,
			show_qr, show_address, show_phone, auto_print, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_slogan = EXCLUDED.company_slogan,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			registration_number = EXCLUDED.registration_number,
			tax_rate = EXCLUDED.tax_rate,
			invoice_prefix = EXCLUDED.invoice_prefix,
			next_invoice_number = EXCLUDED.next_invoice_number,
			currency = EXCLUDED.currency,
			currency_symbol = EXCLUDED.currency_symbol,
			timezone = EXCLUDED.timezone,
			language = EXCLUDED.language,
			theme = EXCLUDED.theme,
			show_qr = EXCLUDED.show_qr,
			show_address = EXCLUDED.show_address,
			show_phone = EXCLUDED.show_phone,
			auto_print = EXCLUDED.auto_print,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		cfg.CompanyName, cfg.CompanySlogan, cfg.Address, cfg.Phone, cfg.RegistrationNumber,
		cfg.TaxRate, cfg.InvoicePrefix, cfg.NextInvoiceNumber, cfg.Currency, cfg.CurrencySymbol,
		cfg.Timezone, cfg.Language, cfg.Theme,
		cfg.ShowQR, cfg.ShowAddress, cfg.ShowPhone, cfg.AutoPrint, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace system config: %w", err)
	}
	return nil
}
