package v1

import (
	"net/http"
	"testing"

	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
)

func TestRegisterProdutorCreatesProfile(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username:    "joao",
		Password:    testPassword,
		Role:        models.RoleProdutor,
		NomeFazenda: "Sítio Boa Vista",
		Cidade:      "Holambra",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var resp dto.RegisterResponse
	decodeJSON(t, w, &resp)
	if resp.Username != "joao" {
		t.Fatalf("unexpected username %q", resp.Username)
	}
	if len(resp.Groups) != 1 || resp.Groups[0] != models.GroupProdutores {
		t.Fatalf("expected Produtores group, got %v", resp.Groups)
	}

	var produtor models.Produtor
	if err := database.DB.Where("nome_fazenda = ?", "Sítio Boa Vista").First(&produtor).Error; err != nil {
		t.Fatalf("producer profile not created: %v", err)
	}
	if produtor.Cidade != "Holambra" {
		t.Fatalf("unexpected cidade %q", produtor.Cidade)
	}
}

func TestRegisterProdutorDefaults(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "maria", models.RoleProdutor)

	var produtor models.Produtor
	if err := database.DB.First(&produtor).Error; err != nil {
		t.Fatalf("producer profile not created: %v", err)
	}
	if produtor.NomeFazenda != "Minha Fazenda" || produtor.Cidade != "Cidade" {
		t.Fatalf("expected default farm data, got %q / %q", produtor.NomeFazenda, produtor.Cidade)
	}
}

func TestRegisterConsumidorHasNoProfile(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "ana", models.RoleConsumidor)

	var count int64
	database.DB.Model(&models.Produtor{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no producer profile, got %d", count)
	}

	token := obtainToken(t, router, "ana")
	w := doRequest(t, router, http.MethodGet, "/api/whoami", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("whoami: expected 200 got %d", w.Code)
	}
	var who dto.WhoAmIResponse
	decodeJSON(t, w, &who)
	if who.Username != "ana" || who.IsSuperuser {
		t.Fatalf("unexpected identity: %+v", who)
	}
	if len(who.Groups) != 1 || who.Groups[0] != models.GroupConsumidores {
		t.Fatalf("expected Consumidores group, got %v", who.Groups)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "joao", models.RoleConsumidor)

	w := doRequest(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username: "joao",
		Password: testPassword,
		Role:     models.RoleProdutor,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var fields map[string]string
	decodeJSON(t, w, &fields)
	if fields["username"] == "" {
		t.Fatalf("expected username-keyed error, got %v", fields)
	}

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", "joao").Count(&count)
	if count != 1 {
		t.Fatalf("expected a single joao account, got %d", count)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodPost, "/api/register", "", map[string]any{
		"username": "curto",
		"password": "abc",
		"role":     "CONSUMIDOR",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodPost, "/api/register", "", map[string]any{
		"username": "joao",
		"password": testPassword,
		"role":     "ADMIN",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestTokenAuthWrongPassword(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "joao", models.RoleConsumidor)

	w := doRequest(t, router, http.MethodPost, "/api/api-token-auth", "", dto.TokenRequest{
		Username: "joao",
		Password: "errada",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestWhoAmIRequiresAuthentication(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodGet, "/api/whoami", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/whoami", "token-invalido", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}
