package repos

import (
	"doacoesonline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ONGRepo struct{ db *sqlx.DB }

func NewONGRepo(db *sqlx.DB) *ONGRepo { return &ONGRepo{db: db} }

func (r *ONGRepo) Create(o domain.ONG) error {
	_, err := r.db.Exec(`
	  INSERT INTO ongs(id,name,email,password_hash,phone,street,city,state,zip_code,contact_person,area_of_focus)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, o.ID, o.Name, o.Email, o.Hash, o.Phone, o.Street, o.City, o.State, o.ZipCode, o.ContactPerson, o.FocusRaw)
	return err
}

func (r *ONGRepo) Get(id string) (domain.ONG, error) {
	var o domain.ONG
	err := r.db.Get(&o, `SELECT * FROM ongs WHERE id = ?`, id)
	return o, err
}

func (r *ONGRepo) ByEmail(email string) (domain.ONG, error) {
	var o domain.ONG
	err := r.db.Get(&o, `SELECT * FROM ongs WHERE LOWER(email) = LOWER(?)`, email)
	return o, err
}

func (r *ONGRepo) NameOrEmailTaken(name, email string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM ongs
	  WHERE LOWER(name) = LOWER(?) OR LOWER(email) = LOWER(?)
	`, name, email)
	return n > 0, err
}

func (r *ONGRepo) List() ([]domain.ONG, error) {
	var out []domain.ONG
	err := r.db.Select(&out, `
	  SELECT * FROM ongs
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}
