package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
)

// moderatorToken bootstraps the moderator account through the startup
// seed and logs it in
func moderatorToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	t.Setenv("MODERADOR_USERNAME", "moderador")
	t.Setenv("MODERADOR_PASSWORD", testPassword)
	if err := database.SeedModerador(database.DB); err != nil {
		t.Fatalf("seed moderador: %v", err)
	}
	return obtainToken(t, router, "moderador")
}

func TestListUsersModeratorOnly(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "joao", models.RoleProdutor)
	registerUser(t, router, "ana", models.RoleConsumidor)
	joao := obtainToken(t, router, "joao")

	// Ordinary users are rejected
	w := doRequest(t, router, http.MethodGet, "/api/users", joao, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}

	// Anonymous callers too
	w = doRequest(t, router, http.MethodGet, "/api/users", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	token := moderatorToken(t, router)

	// A superuser must never appear in the listing
	root := models.User{Username: "root", Password: "x", IsSuperuser: true}
	if err := database.DB.Create(&root).Error; err != nil {
		t.Fatalf("create superuser: %v", err)
	}

	w = doRequest(t, router, http.MethodGet, "/api/users", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var users []dto.UserSummary
	decodeJSON(t, w, &users)
	for _, u := range users {
		if u.Username == "root" {
			t.Fatal("superuser leaked into the listing")
		}
	}
	if len(users) != 3 { // joao, ana, moderador
		t.Fatalf("expected 3 users, got %d (%+v)", len(users), users)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "joao", models.RoleProdutor)
	joao := obtainToken(t, router, "joao")
	feira := createFeira(t, router, joao, "Feira Central", "2026-09-12")
	createProduto(t, router, joao, "Tomate", 5.50, feira.ID)

	token := moderatorToken(t, router)

	var user models.User
	if err := database.DB.Where("username = ?", "joao").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d (%s)", w.Code, w.Body.String())
	}

	var userCount, produtorCount, produtoCount int64
	database.DB.Model(&models.User{}).Where("username = ?", "joao").Count(&userCount)
	database.DB.Model(&models.Produtor{}).Count(&produtorCount)
	database.DB.Model(&models.Produto{}).Count(&produtoCount)
	if userCount != 0 || produtorCount != 0 || produtoCount != 0 {
		t.Fatalf("cascade incomplete: users=%d produtores=%d produtos=%d",
			userCount, produtorCount, produtoCount)
	}

	// The deleted user's token no longer authenticates
	w = doRequest(t, router, http.MethodGet, "/api/whoami", joao, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", w.Code)
	}
}

func TestDeleteSuperuserForbidden(t *testing.T) {
	router := setupTest(t)

	token := moderatorToken(t, router)

	root := models.User{Username: "root", Password: "x", IsSuperuser: true}
	if err := database.DB.Create(&root).Error; err != nil {
		t.Fatalf("create superuser: %v", err)
	}

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/users/%d", root.ID), token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", "root").Count(&count)
	if count != 1 {
		t.Fatal("superuser was deleted")
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	router := setupTest(t)

	token := moderatorToken(t, router)

	w := doRequest(t, router, http.MethodDelete, "/api/users/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestSuperuserIsModerator(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "joao", models.RoleConsumidor)

	// Promote joao to superuser directly; group membership is not needed
	if err := database.DB.Model(&models.User{}).Where("username = ?", "joao").
		Update("is_superuser", true).Error; err != nil {
		t.Fatalf("promote: %v", err)
	}
	token := obtainToken(t, router, "joao")

	w := doRequest(t, router, http.MethodGet, "/api/users", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}
