package handlers

import (
	"doacoesonline/internal/repos"
	"doacoesonline/internal/services"
	"doacoesonline/internal/token"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler     *AuthHandler
	AccountHandler  *AccountHandler
	ProductHandler  *ProductHandler
	DonationHandler *DonationHandler
	Tokens          *token.Manager
}

func NewDeps(db *sqlx.DB, tokens *token.Manager) *Deps {
	companyRepo := repos.NewCompanyRepo(db)
	ongRepo := repos.NewONGRepo(db)
	productRepo := repos.NewProductRepo(db)
	donationRepo := repos.NewDonationRepo(db)

	accountSvc := services.NewAccountService(companyRepo, ongRepo)
	authSvc := services.NewAuthService(companyRepo, ongRepo, tokens)
	catalogSvc := services.NewCatalogService(productRepo)
	donationSvc := services.NewDonationService(donationRepo)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: authSvc},
		AccountHandler:  &AccountHandler{Accounts: accountSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		DonationHandler: &DonationHandler{Donations: donationSvc},
		Tokens:          tokens,
	}
}
