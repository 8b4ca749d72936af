package repos

import (
	"database/sql"
	"errors"

	"doacoesonline/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ErrInsufficientQuantity is returned when a transfer asks for more units than
// the product currently has. The conditional UPDATE below is what detects it.
var ErrInsufficientQuantity = errors.New("insufficient product quantity")

type DonationRepo struct{ db *sqlx.DB }

func NewDonationRepo(db *sqlx.DB) *DonationRepo { return &DonationRepo{db: db} }

// Row used by donation listings (joins the product name).
type DonationRow struct {
	domain.Donation
	ProductName string `db:"product_name" json:"productName"`
	ONGName     string `db:"ong_name" json:"ngoName"`
}

// Transfer records a claim and decrements the product's quantity as one
// transaction. The decrement is a compare-and-swap: it only applies while
// quantity still covers the request, so two overlapping claims can never
// overdraw stock; the loser rolls back with ErrInsufficientQuantity and
// leaves no donation row behind.
func (r *DonationRepo) Transfer(d domain.Donation) (domain.Donation, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Donation{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Product
	if err := tx.Get(&p, `
	  SELECT id, company_id, name, description, quantity, status, created_at
	  FROM products WHERE id = ?
	`, d.ProductID); err != nil {
		return domain.Donation{}, err // sql.ErrNoRows when the product is gone
	}
	if p.CompanyID != d.CompanyID {
		return domain.Donation{}, sql.ErrNoRows
	}

	var ongExists int
	if err := tx.Get(&ongExists, `SELECT COUNT(*) FROM ongs WHERE id = ?`, d.ONGID); err != nil {
		return domain.Donation{}, err
	}
	if ongExists == 0 {
		return domain.Donation{}, sql.ErrNoRows
	}

	res, err := tx.Exec(`
	  UPDATE products SET quantity = quantity - ?
	  WHERE id = ? AND quantity >= ?
	`, d.QuantityDonated, d.ProductID, d.QuantityDonated)
	if err != nil {
		return domain.Donation{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Donation{}, ErrInsufficientQuantity
	}

	if _, err := tx.Exec(`
	  UPDATE products SET status = 'donated' WHERE id = ? AND quantity = 0
	`, d.ProductID); err != nil {
		return domain.Donation{}, err
	}

	if _, err := tx.Exec(`
	  INSERT INTO donations(id,product_id,company_id,ong_id,quantity_donated,status)
	  VALUES(?,?,?,?,?,'pending')
	`, d.ID, d.ProductID, d.CompanyID, d.ONGID, d.QuantityDonated); err != nil {
		return domain.Donation{}, err
	}

	var out domain.Donation
	if err := tx.Get(&out, `
	  SELECT id, product_id, company_id, ong_id, quantity_donated, status, created_at
	  FROM donations WHERE id = ?
	`, d.ID); err != nil {
		return domain.Donation{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Donation{}, err
	}
	return out, nil
}

func (r *DonationRepo) Get(id string) (domain.Donation, error) {
	var d domain.Donation
	err := r.db.Get(&d, `
	  SELECT id, product_id, company_id, ong_id, quantity_donated, status, created_at
	  FROM donations WHERE id = ?
	`, id)
	return d, err
}

// UpdateStatus moves a pending donation to confirmed or cancelled. Pending is
// the only state with an exit, so the WHERE clause doubles as the guard.
func (r *DonationRepo) UpdateStatus(id, status string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE donations SET status = ? WHERE id = ? AND status = 'pending'
	`, status, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *DonationRepo) ListByCompany(companyID string) ([]DonationRow, error) {
	var out []DonationRow
	err := r.db.Select(&out, `
	  SELECT d.id, d.product_id, d.company_id, d.ong_id, d.quantity_donated, d.status, d.created_at,
	         p.name AS product_name, o.name AS ong_name
	  FROM donations d
	  JOIN products p ON p.id = d.product_id
	  JOIN ongs o     ON o.id = d.ong_id
	  WHERE d.company_id = ?
	  ORDER BY datetime(d.created_at) DESC, d.id
	`, companyID)
	return out, err
}

func (r *DonationRepo) ListByONG(ongID string) ([]DonationRow, error) {
	var out []DonationRow
	err := r.db.Select(&out, `
	  SELECT d.id, d.product_id, d.company_id, d.ong_id, d.quantity_donated, d.status, d.created_at,
	         p.name AS product_name, o.name AS ong_name
	  FROM donations d
	  JOIN products p ON p.id = d.product_id
	  JOIN ongs o     ON o.id = d.ong_id
	  WHERE d.ong_id = ?
	  ORDER BY datetime(d.created_at) DESC, d.id
	`, ongID)
	return out, err
}
