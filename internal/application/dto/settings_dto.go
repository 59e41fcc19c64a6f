package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyFieldRequest entrada para actualizar un campo del borrador.
// Value llega como texto crudo; la coerción de tipos es responsabilidad
// del núcleo (campos numéricos caen a un valor seguro).
type ApplyFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// SystemConfigResponse salida de la configuración del sistema.
type SystemConfigResponse struct {
	CompanyName        string `json:"companyName"`
	CompanySlogan      string `json:"companySlogan"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	RegistrationNumber string `json:"registrationNumber"`

	TaxRate           decimal.Decimal `json:"taxRate"`
	InvoicePrefix     string          `json:"invoicePrefix"`
	NextInvoiceNumber int             `json:"nextInvoiceNumber"`
	Currency          string          `json:"currency"`
	CurrencySymbol    string          `json:"currencySymbol"`

	Timezone string `json:"timezone"`
	Language string `json:"language"`
	Theme    string `json:"theme"`

	ShowQR      bool `json:"showQR"`
	ShowAddress bool `json:"showAddress"`
	ShowPhone   bool `json:"showPhone"`
	AutoPrint   bool `json:"autoPrint"`

	UpdatedAt time.Time `json:"updated_at"`
}
