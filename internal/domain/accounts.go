package domain

import "strings"

// Account types accepted by login.
const (
	TypeCompany = "company"
	TypeONG     = "ong"
)

type Company struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Hash          string `db:"password_hash" json:"-"`
	Phone         string `db:"phone" json:"phone,omitempty"`
	Street        string `db:"street" json:"street,omitempty"`
	City          string `db:"city" json:"city,omitempty"`
	State         string `db:"state" json:"state,omitempty"`
	ZipCode       string `db:"zip_code" json:"zipCode,omitempty"`
	ContactPerson string `db:"contact_person" json:"contactPerson,omitempty"`
	CNPJ          string `db:"cnpj" json:"cnpj,omitempty"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
}

type ONG struct {
	ID            string   `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Email         string   `db:"email" json:"email"`
	Hash          string   `db:"password_hash" json:"-"`
	Phone         string   `db:"phone" json:"phone,omitempty"`
	Street        string   `db:"street" json:"street,omitempty"`
	City          string   `db:"city" json:"city,omitempty"`
	State         string   `db:"state" json:"state,omitempty"`
	ZipCode       string   `db:"zip_code" json:"zipCode,omitempty"`
	ContactPerson string   `db:"contact_person" json:"contactPerson,omitempty"`
	FocusRaw      string   `db:"area_of_focus" json:"-"`
	FocusAreas    []string `db:"-" json:"areaOfFocus"`
	CreatedAt     string   `db:"created_at" json:"createdAt"`
}

// Focus areas are stored as a single ';'-joined column.

func JoinFocus(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ";")
}

func SplitFocus(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ";")
}
