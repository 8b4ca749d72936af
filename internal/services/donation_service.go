package services

import (
	"database/sql"
	"errors"
	"fmt"

	"doacoesonline/internal/domain"
	"doacoesonline/internal/repos"

	"github.com/google/uuid"
)

type DonationService struct {
	Donations *repos.DonationRepo
}

func NewDonationService(donations *repos.DonationRepo) *DonationService {
	return &DonationService{Donations: donations}
}

type TransferInput struct {
	ProductID       string `json:"productId"`
	CompanyID       string `json:"companyId"`
	ONGID           string `json:"ngoId"`
	QuantityDonated int    `json:"quantityDonated"`
}

// Transfer records an ONG's claim on a product. The donation insert, the
// quantity decrement and the status flip commit together or not at all.
func (s *DonationService) Transfer(in TransferInput) (domain.Donation, error) {
	if in.ProductID == "" || in.CompanyID == "" || in.ONGID == "" {
		return domain.Donation{}, fmt.Errorf("%w: productId, companyId and ngoId are required", ErrValidation)
	}
	if in.QuantityDonated < 1 {
		return domain.Donation{}, fmt.Errorf("%w: quantityDonated must be a positive integer", ErrValidation)
	}

	d := domain.Donation{
		ID:              uuid.NewString(),
		ProductID:       in.ProductID,
		CompanyID:       in.CompanyID,
		ONGID:           in.ONGID,
		QuantityDonated: in.QuantityDonated,
	}
	out, err := s.Donations.Transfer(d)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Donation{}, fmt.Errorf("%w: product not found", ErrNotFound)
	case errors.Is(err, repos.ErrInsufficientQuantity):
		return domain.Donation{}, ErrInsufficientQuantity
	case err != nil:
		return domain.Donation{}, err
	}
	return out, nil
}

// SetStatus moves a pending donation to confirmed or cancelled. Only the
// company that owns the donated product may do this.
func (s *DonationService) SetStatus(donationID, companyID, status string) (domain.Donation, error) {
	if status != domain.DonationConfirmed && status != domain.DonationCancelled {
		return domain.Donation{}, fmt.Errorf("%w: status must be confirmed or cancelled", ErrValidation)
	}
	d, err := s.Donations.Get(donationID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Donation{}, fmt.Errorf("%w: donation not found", ErrNotFound)
	}
	if err != nil {
		return domain.Donation{}, err
	}
	if d.CompanyID != companyID {
		return domain.Donation{}, ErrForbidden
	}
	ok, err := s.Donations.UpdateStatus(donationID, status)
	if err != nil {
		return domain.Donation{}, err
	}
	if !ok {
		return domain.Donation{}, fmt.Errorf("%w: donation is no longer pending", ErrValidation)
	}
	return s.Donations.Get(donationID)
}

// ListFor returns the donations visible to the authenticated account.
func (s *DonationService) ListFor(accountID, userType string) ([]repos.DonationRow, error) {
	if userType == domain.TypeCompany {
		return s.Donations.ListByCompany(accountID)
	}
	return s.Donations.ListByONG(accountID)
}
