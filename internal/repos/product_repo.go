package repos

import (
	"doacoesonline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Row used by the public catalog listing (joins the owning company).
type ProductRow struct {
	domain.Product
	CompanyName  string `db:"company_name" json:"companyName"`
	CompanyEmail string `db:"company_email" json:"companyEmail"`
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,company_id,name,description,quantity,status)
	  VALUES(?,?,?,?,?,?)
	`, p.ID, p.CompanyID, p.Name, p.Description, p.Quantity, p.Status)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, company_id, name, description, quantity, status, created_at
	  FROM products WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) List() ([]ProductRow, error) {
	var out []ProductRow
	err := r.db.Select(&out, `
	  SELECT p.id, p.company_id, p.name, p.description, p.quantity, p.status, p.created_at,
	         c.name AS company_name, c.email AS company_email
	  FROM products p
	  JOIN companies c ON c.id = p.company_id
	  ORDER BY datetime(p.created_at) DESC, p.id
	`)
	return out, err
}
