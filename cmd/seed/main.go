// seed crea el esquema de la base de datos y carga datos de ejemplo:
// un usuario admin, items de catálogo con su inventario y un teléfono de reventa.
//
// Uso: go run ./cmd/seed
// Idempotente: usa CREATE TABLE IF NOT EXISTS y ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/infrastructure/postgres"
	"github.com/phonefixpro/phonefix-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'staff',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS customers (
	id         UUID PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT '',
	product    TEXT NOT NULL DEFAULT '',
	repair     TEXT NOT NULL DEFAULT '',
	price      NUMERIC(12,2) NOT NULL DEFAULT 0,
	note       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL DEFAULT 0,
	cost        NUMERIC(12,2) NOT NULL DEFAULT 0,
	sku         TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS items_sku_unique ON items (sku) WHERE sku <> '';

CREATE TABLE IF NOT EXISTS inventory (
	id              UUID PRIMARY KEY,
	item_id         UUID NOT NULL UNIQUE REFERENCES items(id) ON DELETE CASCADE,
	quantity        INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	min_stock_level INT NOT NULL DEFAULT 10 CHECK (min_stock_level >= 0),
	last_updated    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
	id             UUID PRIMARY KEY,
	customer_id    UUID REFERENCES customers(id) ON DELETE SET NULL,
	item_id        UUID REFERENCES items(id) ON DELETE SET NULL,
	quantity       INT NOT NULL CHECK (quantity > 0),
	unit_price     NUMERIC(12,2) NOT NULL DEFAULT 0,
	total_amount   NUMERIC(12,2) NOT NULL DEFAULT 0,
	sale_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
	payment_method TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS sales_sale_date_idx ON sales (sale_date DESC);

CREATE TABLE IF NOT EXISTS phones (
	id         UUID PRIMARY KEY,
	brand      TEXT NOT NULL,
	model      TEXT NOT NULL,
	color      TEXT NOT NULL DEFAULT '',
	imei       TEXT NOT NULL UNIQUE,
	price      NUMERIC(12,2) NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'available',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema creado")

	// Usuario admin inicial (password: admin123!)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123!"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING`,
		uuid.New().String(), "admin", "admin@phonefixpro.local", string(hash), entity.RoleAdmin, time.Now(),
	)
	if err != nil {
		fail("seed usuario admin: %v", err)
	}

	// Catálogo de ejemplo con su fila de inventario
	items := []struct {
		name, category, sku string
		price, cost         string
		quantity            int
	}{
		{"Cambio de pantalla iPhone 13", entity.CategoryRepair, "REP-IP13-SCR", "129.99", "45.00", 25},
		{"Batería Samsung S21", entity.CategoryParts, "PRT-S21-BAT", "39.99", "12.50", 40},
		{"Funda silicona universal", entity.CategoryAccessories, "ACC-CASE-UNI", "9.99", "2.00", 120},
		{"Protector de vidrio templado", entity.CategoryAccessories, "ACC-GLASS-9H", "7.99", "1.20", 200},
		{"Conector de carga USB-C", entity.CategoryParts, "PRT-USBC-PORT", "24.99", "6.00", 15},
	}
	for _, it := range items {
		itemID := uuid.New().String()
		tag, err := pool.Exec(ctx, `
			INSERT INTO items (id, name, description, category, price, cost, sku, created_at)
			VALUES ($1, $2, '', $3, $4, $5, $6, $7)
			ON CONFLICT (sku) WHERE sku <> '' DO NOTHING`,
			itemID, it.name, it.category, it.price, it.cost, it.sku, time.Now(),
		)
		if err != nil {
			fail("seed item %s: %v", it.sku, err)
		}
		if tag.RowsAffected() == 0 {
			continue // ya existía
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO inventory (id, item_id, quantity, min_stock_level, last_updated)
			VALUES ($1, $2, $3, 10, $4)`,
			uuid.New().String(), itemID, it.quantity, time.Now(),
		)
		if err != nil {
			fail("seed inventario %s: %v", it.sku, err)
		}
	}

	// Teléfono de reventa de ejemplo
	_, err = pool.Exec(ctx, `
		INSERT INTO phones (id, brand, model, color, imei, price, status, created_at)
		VALUES ($1, 'Apple', 'iPhone 12', 'negro', '354442067957212', 299.99, $2, $3)
		ON CONFLICT (imei) DO NOTHING`,
		uuid.New().String(), entity.PhoneStatusAvailable, time.Now(),
	)
	if err != nil {
		fail("seed teléfono: %v", err)
	}

	fmt.Println("datos de ejemplo cargados")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
