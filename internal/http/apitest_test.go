package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"doacoesonline/internal/http/handlers"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/token"
)

const testSecret = "handler-test-secret"

// newTestApp wires the real routes against an in-memory database. Rate
// limiters are left off so tests can hammer endpoints freely.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB, *token.Manager) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", true)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	tokens := token.NewManager(testSecret, time.Hour)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, tokens)
	auth := handlers.RequireAuth(tokens)

	app.Post("/companies", deps.AccountHandler.RegisterCompany)
	app.Post("/ongs", deps.AccountHandler.RegisterONG)
	app.Get("/companies", deps.AccountHandler.ListCompanies)
	app.Get("/ongs", deps.AccountHandler.ListONGs)
	app.Get("/products", deps.ProductHandler.List)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/products", auth, handlers.RequireType("company"), deps.ProductHandler.Create)
	app.Post("/donations", auth, handlers.RequireType("ong"), deps.DonationHandler.Create)
	app.Patch("/donations/:id/status", auth, handlers.RequireType("company"), deps.DonationHandler.UpdateStatus)
	app.Get("/donations", auth, deps.DonationHandler.List)

	return app, db, tokens
}

func jsonReq(method, path, bearer string, body any) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("bad json %q: %v", b, err)
	}
}

// login signs in a seeded account and returns its bearer token.
func login(t *testing.T, app *fiber.App, email, userType string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/login", "", map[string]string{
		"email": email, "password": "Passw0rd!", "userType": userType,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	if body.Token == "" {
		t.Fatal("no token in login response")
	}
	return body.Token
}
