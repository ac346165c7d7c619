package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "senha123"

// setupTest wires the full router against a fresh in-memory database.
// Each test gets its own database to avoid cross-test collisions.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedGroups(db); err != nil {
		t.Fatalf("seed groups: %v", err)
	}
	database.DB = db

	router := gin.New()
	RegisterRoutes(router.Group("/api"))
	return router
}

// doRequest performs a request against the router, optionally with a
// JSON body and a bearer token
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser creates an account through the public endpoint
func registerUser(t *testing.T, router *gin.Engine, username string, role models.Role) {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username: username,
		Password: testPassword,
		Role:     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201 got %d (%s)", username, w.Code, w.Body.String())
	}
}

// obtainToken exchanges the test credentials for a bearer token
func obtainToken(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/api-token-auth", "", dto.TokenRequest{
		Username: username,
		Password: testPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("token auth %s: expected 200 got %d (%s)", username, w.Code, w.Body.String())
	}
	var resp dto.TokenResponse
	decodeJSON(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("token auth returned an empty token")
	}
	return resp.Token
}

// createFeira persists a market through the API
func createFeira(t *testing.T, router *gin.Engine, token, nome, data string) models.Feira {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/feiras", token, dto.FeiraRequest{
		Nome:   nome,
		Cidade: "Campinas",
		Data:   data,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create feira: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var feira models.Feira
	decodeJSON(t, w, &feira)
	return feira
}

// createProduto persists a product through the API
func createProduto(t *testing.T, router *gin.Engine, token, nome string, preco float64, feiraID uint) dto.ProdutoResponse {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome":  nome,
		"preco": preco,
		"feira": feiraID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create produto: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var resp dto.ProdutoResponse
	decodeJSON(t, w, &resp)
	return resp
}
