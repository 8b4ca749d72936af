package services

import (
	"fmt"

	"doacoesonline/internal/domain"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// AccountService registers companies and ONGs. Raw passwords never reach the
// repos; only the bcrypt hash is stored.
type AccountService struct {
	Companies *repos.CompanyRepo
	ONGs      *repos.ONGRepo
}

func NewAccountService(companies *repos.CompanyRepo, ongs *repos.ONGRepo) *AccountService {
	return &AccountService{Companies: companies, ONGs: ongs}
}

type RegisterInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Phone         string   `json:"phone"`
	Street        string   `json:"street"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zipCode"`
	ContactPerson string   `json:"contactPerson"`
	CNPJ          string   `json:"cnpj"`        // companies only
	AreaOfFocus   []string `json:"areaOfFocus"` // ONGs only
}

func (in *RegisterInput) check() (name, email string, err error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return "", "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	email, ok = validate.Email(in.Email)
	if !ok {
		return "", "", fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if !validate.Password(in.Password) {
		return "", "", fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	return name, email, nil
}

func (s *AccountService) RegisterCompany(in RegisterInput) (domain.Company, error) {
	name, email, err := in.check()
	if err != nil {
		return domain.Company{}, err
	}
	taken, err := s.Companies.NameOrEmailTaken(name, email)
	if err != nil {
		return domain.Company{}, err
	}
	if taken {
		return domain.Company{}, ErrConflict
	}
	if in.CNPJ != "" {
		taken, err := s.Companies.CNPJTaken(in.CNPJ)
		if err != nil {
			return domain.Company{}, err
		}
		if taken {
			return domain.Company{}, ErrConflict
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return domain.Company{}, err
	}
	c := domain.Company{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Hash:          string(hash),
		Phone:         in.Phone,
		Street:        in.Street,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		ContactPerson: in.ContactPerson,
		CNPJ:          in.CNPJ,
	}
	if err := s.Companies.Create(c); err != nil {
		return domain.Company{}, err
	}
	return s.Companies.Get(c.ID)
}

func (s *AccountService) RegisterONG(in RegisterInput) (domain.ONG, error) {
	name, email, err := in.check()
	if err != nil {
		return domain.ONG{}, err
	}
	taken, err := s.ONGs.NameOrEmailTaken(name, email)
	if err != nil {
		return domain.ONG{}, err
	}
	if taken {
		return domain.ONG{}, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return domain.ONG{}, err
	}
	o := domain.ONG{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Hash:          string(hash),
		Phone:         in.Phone,
		Street:        in.Street,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		ContactPerson: in.ContactPerson,
		FocusRaw:      domain.JoinFocus(in.AreaOfFocus),
	}
	if err := s.ONGs.Create(o); err != nil {
		return domain.ONG{}, err
	}
	stored, err := s.ONGs.Get(o.ID)
	if err != nil {
		return domain.ONG{}, err
	}
	stored.FocusAreas = domain.SplitFocus(stored.FocusRaw)
	return stored, nil
}

func (s *AccountService) ListCompanies() ([]domain.Company, error) {
	return s.Companies.List()
}

func (s *AccountService) ListONGs() ([]domain.ONG, error) {
	out, err := s.ONGs.List()
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].FocusAreas = domain.SplitFocus(out[i].FocusRaw)
	}
	return out, nil
}
