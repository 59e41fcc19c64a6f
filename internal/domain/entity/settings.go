package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Idiomas soportados por el sistema.
const (
	LangFR = "fr"
	LangEN = "en"
	LangAR = "ar"
)

// Temas visuales disponibles.
const (
	ThemePurple  = "purple"
	ThemeEmerald = "emerald"
	ThemeBlue    = "blue"
	ThemeRose    = "rose"
	ThemeAmber   = "amber"
	ThemeSlate   = "slate"
)

// Timezones ofrecidas en la configuración regional.
var Timezones = []string{
	"Africa/Nouakchott", "Africa/Dakar", "Africa/Casablanca",
	"Europe/Paris", "America/New_York", "UTC",
}

// SystemConfig es la configuración canónica del sistema (objeto singleton).
// Se reemplaza completa en cada commit; nunca se persiste a medio editar.
type SystemConfig struct {
	CompanyName        string
	CompanySlogan      string
	Address            string
	Phone              string
	RegistrationNumber string

	TaxRate           decimal.Decimal // porcentaje, nunca negativo
	InvoicePrefix     string
	NextInvoiceNumber int // siempre >= 1
	Currency          string
	CurrencySymbol    string

	Timezone string
	Language string // ver constantes Lang*
	Theme    string // ver constantes Theme*

	ShowQR      bool
	ShowAddress bool
	ShowPhone   bool
	AutoPrint   bool

	UpdatedAt time.Time
}

// DefaultSystemConfig devuelve la configuración inicial del sistema,
// usada cuando el almacenamiento aún no tiene un valor confirmado.
func DefaultSystemConfig(now time.Time) SystemConfig {
	return SystemConfig{
		CompanyName:       "Mi Restaurante",
		CompanySlogan:     "Sabor que vuelve",
		TaxRate:           decimal.Zero,
		InvoicePrefix:     "FAC-",
		NextInvoiceNumber: 1,
		Currency:          "MRU",
		CurrencySymbol:    "UM",
		Timezone:          "Africa/Nouakchott",
		Language:          LangFR,
		Theme:             ThemePurple,
		ShowQR:            true,
		ShowAddress:       true,
		ShowPhone:         true,
		UpdatedAt:         now,
	}
}

// ValidLanguage informa si el código pertenece al conjunto fijo de idiomas.
// Se parsea con x/text para aceptar variantes regionales (fr-FR, ar-MR, ...).
func ValidLanguage(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	switch base.String() {
	case LangFR, LangEN, LangAR:
		return true
	}
	return false
}

// ValidTheme informa si el identificador de tema pertenece al conjunto fijo.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemePurple, ThemeEmerald, ThemeBlue, ThemeRose, ThemeAmber, ThemeSlate:
		return true
	}
	return false
}
