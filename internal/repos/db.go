package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the database and bootstraps the schema. Demo data (including
// demo credentials) is only seeded when explicitly asked for, so a first-run
// production database never ships known passwords.
func OpenDB(dsn string, seedDemo bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one pooled connection serializes
	// concurrent transfers instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if seedDemo {
		if err := seedIfEmpty(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Companies (donors)
CREATE TABLE IF NOT EXISTS companies(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  street TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  zip_code TEXT NOT NULL DEFAULT '',
  contact_person TEXT NOT NULL DEFAULT '',
  cnpj TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_name_nocase  ON companies(LOWER(name));
CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_email_nocase ON companies(LOWER(email));
CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_cnpj ON companies(cnpj) WHERE cnpj <> '';

-- ONGs (recipients)
CREATE TABLE IF NOT EXISTS ongs(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  street TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  zip_code TEXT NOT NULL DEFAULT '',
  contact_person TEXT NOT NULL DEFAULT '',
  area_of_focus TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_ongs_name_nocase  ON ongs(LOWER(name));
CREATE UNIQUE INDEX IF NOT EXISTS idx_ongs_email_nocase ON ongs(LOWER(email));

-- Products offered for donation
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL REFERENCES companies(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL CHECK (quantity >= 0),
  status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available','reserved','donated')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_company    ON products(company_id);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Donations (one row per transfer)
CREATE TABLE IF NOT EXISTS donations(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  company_id TEXT NOT NULL REFERENCES companies(id),
  ong_id TEXT NOT NULL REFERENCES ongs(id),
  quantity_donated INTEGER NOT NULL CHECK (quantity_donated > 0),
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','confirmed','cancelled')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_donations_product ON donations(product_id);
CREATE INDEX IF NOT EXISTS idx_donations_company ON donations(company_id);
CREATE INDEX IF NOT EXISTS idx_donations_ong     ON donations(ong_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts a demo company, ONG and a couple of products so the
// catalog page has something to show on first run.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM companies`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo company/ong/products")

	hash := func(raw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return string(h)
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO companies(id,name,email,password_hash,city,contact_person) VALUES
	  ('co-demo','Mercado Central','contato@mercadocentral.test',?, 'Sao Paulo','Ana Lima')`, hash("Passw0rd!"))
	tx.MustExec(`INSERT INTO ongs(id,name,email,password_hash,city,area_of_focus) VALUES
	  ('ong-demo','Alimenta Brasil','ola@alimentabrasil.test',?, 'Sao Paulo','food;children')`, hash("Passw0rd!"))
	tx.MustExec(`INSERT INTO products(id,company_id,name,description,quantity) VALUES
	  ('prod-rice','co-demo','Rice 5kg','Surplus rice bags near best-before date',40),
	  ('prod-milk','co-demo','UHT Milk 1L','Overstocked whole milk',120)`)

	return tx.Commit()
}
