package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

// buildAuthApp construye una app Fiber mínima con AuthMiddleware y un handler
// dummy que devuelve el user_id cargado en locals.
func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func doAuthRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Caso 1: Token válido → 200 y user_id en locals.
func TestAuthMiddleware_TokenValido_Pasa(t *testing.T) {
	app := buildAuthApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doAuthRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"], "el middleware debe dejar el user_id en locals")
}

// Caso 2: Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doAuthRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: Formato distinto a "Bearer <token>" → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doAuthRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: Token malformado → 401.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doAuthRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token firmado con otro secret → 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildAuthApp()
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doAuthRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token expirado → 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildAuthApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -5)
	require.NoError(t, err)

	resp := doAuthRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
