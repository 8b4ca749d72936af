package services_test

import (
	"errors"
	"testing"
	"time"

	"doacoesonline/internal/repos"
	"doacoesonline/internal/services"
	"doacoesonline/internal/token"
)

func newAuth(t *testing.T) *services.AuthService {
	t.Helper()
	db := memdb(t)
	tm := token.NewManager("test-secret", time.Hour)
	return services.NewAuthService(repos.NewCompanyRepo(db), repos.NewONGRepo(db), tm)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := newAuth(t)

	tok, user, err := svc.Login("contato@mercadocentral.test", "Passw0rd!", "company")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "co-demo" || user.UserType != "company" {
		t.Fatalf("bad user summary: %+v", user)
	}

	claims, err := svc.Tokens.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "co-demo" || claims.Email != "contato@mercadocentral.test" || claims.UserType != "company" {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestLogin_ONGType(t *testing.T) {
	svc := newAuth(t)

	_, user, err := svc.Login("ola@alimentabrasil.test", "Passw0rd!", "ong")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != "ong-demo" || user.UserType != "ong" {
		t.Fatalf("bad user summary: %+v", user)
	}
}

// Unknown email, wrong password and wrong type must fail identically.
func TestLogin_UniformFailure(t *testing.T) {
	svc := newAuth(t)

	cases := [][3]string{
		{"nobody@nowhere.test", "Passw0rd!", "company"},
		{"contato@mercadocentral.test", "wrong-pass", "company"},
		{"contato@mercadocentral.test", "Passw0rd!", "ong"}, // right creds, wrong type
		{"contato@mercadocentral.test", "Passw0rd!", "admin"},
	}
	for i, cse := range cases {
		_, _, err := svc.Login(cse[0], cse[1], cse[2])
		if !errors.Is(err, services.ErrBadCreds) {
			t.Fatalf("case %d: want ErrBadCreds, got %v", i, err)
		}
		if err.Error() != services.ErrBadCreds.Error() {
			t.Fatalf("case %d: message differs, leaks which field failed: %q", i, err)
		}
	}
}

// An unknown email must still pay for a hash comparison, otherwise response
// time reveals whether the address exists.
func TestLogin_UnknownEmailBurnsCompare(t *testing.T) {
	svc := newAuth(t)

	start := time.Now()
	_, _, err := svc.Login("nobody@nowhere.test", "Passw0rd!", "company")
	elapsed := time.Since(start)

	if !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	// a cost-12 bcrypt compare takes well over this even on fast hardware;
	// skipping it returns in microseconds
	if elapsed < 10*time.Millisecond {
		t.Fatalf("unknown-email login returned in %v; bcrypt compare was skipped", elapsed)
	}
}
