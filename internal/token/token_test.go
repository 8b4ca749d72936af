package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret-a", time.Hour)

	tok, err := m.Issue("acct-1", "a@b.test", "company")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "acct-1" || claims.Email != "a@b.test" || claims.UserType != "company" {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	m := NewManager("secret-a", -time.Minute)
	tok, err := m.Issue("acct-1", "a@b.test", "ong")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(tok); err != ErrInvalid {
		t.Fatalf("want ErrInvalid for expired token, got %v", err)
	}
}

func TestParse_RejectsWrongSecretAndGarbage(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	tok, err := other.Issue("acct-1", "a@b.test", "company")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(tok); err != ErrInvalid {
		t.Fatalf("want ErrInvalid for foreign signature, got %v", err)
	}
	if _, err := m.Parse("not.a.jwt"); err != ErrInvalid {
		t.Fatalf("want ErrInvalid for garbage, got %v", err)
	}
}
