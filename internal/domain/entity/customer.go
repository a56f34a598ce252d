package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del taller, con los campos de recepción del
// equipo (producto que trae, reparación solicitada, precio cotizado).
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Status    string
	Product   string          // equipo que deja el cliente
	Repair    string          // reparación solicitada
	Price     decimal.Decimal // precio cotizado de la reparación
	Note      string
	CreatedAt time.Time
}
