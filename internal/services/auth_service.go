package services

import (
	"doacoesonline/internal/domain"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/token"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Companies *repos.CompanyRepo
	ONGs      *repos.ONGRepo
	Tokens    *token.Manager
}

func NewAuthService(companies *repos.CompanyRepo, ongs *repos.ONGRepo, tokens *token.Manager) *AuthService {
	return &AuthService{Companies: companies, ONGs: ongs, Tokens: tokens}
}

// UserSummary is what login returns alongside the token.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// dummyHash keeps the not-found path as expensive as a real mismatch.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("uniform-timing"), bcryptCost)

// failEven burns a bcrypt compare so an unknown email costs the same as a
// wrong password and the two cannot be told apart by response time.
func failEven(password string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return ErrBadCreds
}

// Login checks credentials for the declared account type and issues a token.
// Unknown email and wrong password fail identically with ErrBadCreds.
func (s *AuthService) Login(email, password, userType string) (string, UserSummary, error) {
	var id, name, hash string
	switch userType {
	case domain.TypeCompany:
		c, err := s.Companies.ByEmail(email)
		if err != nil {
			return "", UserSummary{}, failEven(password)
		}
		id, name, hash = c.ID, c.Name, c.Hash
	case domain.TypeONG:
		o, err := s.ONGs.ByEmail(email)
		if err != nil {
			return "", UserSummary{}, failEven(password)
		}
		id, name, hash = o.ID, o.Name, o.Hash
	default:
		return "", UserSummary{}, failEven(password)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", UserSummary{}, ErrBadCreds
	}

	tok, err := s.Tokens.Issue(id, email, userType)
	if err != nil {
		return "", UserSummary{}, err
	}
	return tok, UserSummary{ID: id, Name: name, Email: email, UserType: userType}, nil
}
