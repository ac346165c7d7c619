package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var userService = services.NewUserService()

// ListUsers godoc
// @Summary List non-superuser accounts (moderator only)
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserSummary
// @Router /users [get]
func ListUsers(c *gin.Context) {
	users, err := userService.ListCommon()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete an account and everything it owns (moderator only)
// @Description Superuser accounts cannot be deleted
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := userService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
