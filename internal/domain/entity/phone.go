package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ledger de reventa de teléfonos.
const (
	PhoneStatusAvailable = "available"
	PhoneStatusReserved  = "reserved"
	PhoneStatusSold      = "sold"
)

// Phone representa un teléfono usado en el ledger de reventa.
// El IMEI es único e inmutable después de la creación.
type Phone struct {
	ID        string
	Brand     string
	Model     string
	Color     string
	IMEI      string
	Price     decimal.Decimal
	Status    string
	CreatedAt time.Time
}
