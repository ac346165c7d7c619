package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/middleware"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var authService = services.NewAuthService()

// Register godoc
// @Summary Register a new account
// @Description Public registration; producers also get their profile created
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.RegisterResponse
// @Router /register [post]
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := authService.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:  "Usuário criado com sucesso!",
		Username: user.Username,
		Groups:   user.GroupNames(),
	})
}

// TokenAuth godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Router /api-token-auth [post]
func TokenAuth(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	response, err := authService.IssueToken(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// WhoAmI godoc
// @Summary Identity introspection for the authenticated caller
// @Tags auth
// @Produce json
// @Success 200 {object} dto.WhoAmIResponse
// @Router /whoami [get]
func WhoAmI(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.WhoAmIResponse{
		Username:    user.Username,
		Groups:      user.GroupNames(),
		IsSuperuser: user.IsSuperuser,
	})
}
