// Package settings contiene el núcleo puro de configuración e identidad:
// protocolo borrador/commit, registro de cuentas y catálogo de ubicaciones.
// Toda operación es copy-on-write: recibe el estado actual y devuelve un
// valor nuevo sin mutar colecciones compartidas.
package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// Nombres de campo aceptados por ApplyField (mismos identificadores que
// expone la API).
const (
	FieldCompanyName        = "companyName"
	FieldCompanySlogan      = "companySlogan"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldRegistrationNumber = "registrationNumber"
	FieldTaxRate            = "taxRate"
	FieldInvoicePrefix      = "invoicePrefix"
	FieldNextInvoiceNumber  = "nextInvoiceNumber"
	FieldCurrency           = "currency"
	FieldCurrencySymbol     = "currencySymbol"
	FieldTimezone           = "timezone"
	FieldLanguage           = "language"
	FieldTheme              = "theme"
	FieldShowQR             = "showQR"
	FieldShowAddress        = "showAddress"
	FieldShowPhone          = "showPhone"
	FieldAutoPrint          = "autoPrint"
)

// BeginEdit copia la configuración confirmada a un borrador independiente.
// SystemConfig no contiene referencias compartidas, así que la copia por
// valor ya es una copia profunda.
func BeginEdit(current entity.SystemConfig) entity.SystemConfig {
	return current
}

// ApplyField actualiza exactamente un campo del borrador y devuelve el
// borrador resultante. Los campos numéricos corrigen entradas no numéricas
// a un valor seguro: nextInvoiceNumber cae a 1 y taxRate a cero; nunca se
// produce un valor negativo. No toca el valor confirmado.
func ApplyField(draft entity.SystemConfig, field, value string) (entity.SystemConfig, error) {
	switch field {
	case FieldCompanyName:
		draft.CompanyName = value
	case FieldCompanySlogan:
		draft.CompanySlogan = value
	case FieldAddress:
		draft.Address = value
	case FieldPhone:
		draft.Phone = value
	case FieldRegistrationNumber:
		draft.RegistrationNumber = value
	case FieldTaxRate:
		draft.TaxRate = coerceTaxRate(value)
	case FieldInvoicePrefix:
		draft.InvoicePrefix = value
	case FieldNextInvoiceNumber:
		draft.NextInvoiceNumber = coerceInvoiceNumber(value)
	case FieldCurrency:
		draft.Currency = value
	case FieldCurrencySymbol:
		draft.CurrencySymbol = value
	case FieldTimezone:
		draft.Timezone = value
	case FieldLanguage:
		if entity.ValidLanguage(value) {
			draft.Language = value
		} else {
			draft.Language = entity.LangFR
		}
	case FieldTheme:
		if entity.ValidTheme(value) {
			draft.Theme = value
		} else {
			draft.Theme = entity.ThemePurple
		}
	case FieldShowQR:
		draft.ShowQR = coerceBool(value)
	case FieldShowAddress:
		draft.ShowAddress = coerceBool(value)
	case FieldShowPhone:
		draft.ShowPhone = coerceBool(value)
	case FieldAutoPrint:
		draft.AutoPrint = coerceBool(value)
	default:
		return draft, domain.ErrInvalidInput
	}
	return draft, nil
}

// Commit produce el nuevo valor confirmado a partir del borrador completo.
// Es todo-o-nada: no existe commit parcial ni rollback. Las reglas de
// coerción de ApplyField mantienen el borrador estructuralmente válido,
// pero los invariantes se reafirman aquí por si el borrador llegó armado
// por fuera del protocolo.
func Commit(draft entity.SystemConfig, now time.Time) entity.SystemConfig {
	if draft.NextInvoiceNumber < 1 {
		draft.NextInvoiceNumber = 1
	}
	if draft.TaxRate.IsNegative() {
		draft.TaxRate = decimal.Zero
	}
	draft.UpdatedAt = now
	return draft
}

func coerceInvoiceNumber(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func coerceTaxRate(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func coerceBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return b
}
