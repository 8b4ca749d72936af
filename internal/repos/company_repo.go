package repos

import (
	"doacoesonline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CompanyRepo struct{ db *sqlx.DB }

func NewCompanyRepo(db *sqlx.DB) *CompanyRepo { return &CompanyRepo{db: db} }

func (r *CompanyRepo) Create(c domain.Company) error {
	_, err := r.db.Exec(`
	  INSERT INTO companies(id,name,email,password_hash,phone,street,city,state,zip_code,contact_person,cnpj)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, c.ID, c.Name, c.Email, c.Hash, c.Phone, c.Street, c.City, c.State, c.ZipCode, c.ContactPerson, c.CNPJ)
	return err
}

func (r *CompanyRepo) Get(id string) (domain.Company, error) {
	var c domain.Company
	err := r.db.Get(&c, `SELECT * FROM companies WHERE id = ?`, id)
	return c, err
}

func (r *CompanyRepo) ByEmail(email string) (domain.Company, error) {
	var c domain.Company
	err := r.db.Get(&c, `SELECT * FROM companies WHERE LOWER(email) = LOWER(?)`, email)
	return c, err
}

// NameOrEmailTaken backs the uniqueness check at registration. The unique
// indexes remain the last line of defense against a racing insert.
func (r *CompanyRepo) NameOrEmailTaken(name, email string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM companies
	  WHERE LOWER(name) = LOWER(?) OR LOWER(email) = LOWER(?)
	`, name, email)
	return n > 0, err
}

// CNPJTaken mirrors NameOrEmailTaken for the optional tax id; the partial
// unique index idx_companies_cnpj backstops it.
func (r *CompanyRepo) CNPJTaken(cnpj string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM companies WHERE cnpj = ? AND cnpj <> ''`, cnpj)
	return n > 0, err
}

func (r *CompanyRepo) List() ([]domain.Company, error) {
	var out []domain.Company
	err := r.db.Select(&out, `
	  SELECT * FROM companies
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}
