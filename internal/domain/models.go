package domain

// Product lifecycle. RESERVED is modeled in storage but no current flow sets it.
const (
	ProductAvailable = "available"
	ProductReserved  = "reserved"
	ProductDonated   = "donated"
)

// Donation lifecycle.
const (
	DonationPending   = "pending"
	DonationConfirmed = "confirmed"
	DonationCancelled = "cancelled"
)

type Product struct {
	ID          string `db:"id" json:"id"`
	CompanyID   string `db:"company_id" json:"companyId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Quantity    int    `db:"quantity" json:"quantity"`
	Status      string `db:"status" json:"status"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

type Donation struct {
	ID              string `db:"id" json:"id"`
	ProductID       string `db:"product_id" json:"productId"`
	CompanyID       string `db:"company_id" json:"companyId"`
	ONGID           string `db:"ong_id" json:"ngoId"`
	QuantityDonated int    `db:"quantity_donated" json:"quantityDonated"`
	Status          string `db:"status" json:"status"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
}
