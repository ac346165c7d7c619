package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var feiraService = services.NewFeiraService()

// ListFeiras godoc
// @Summary List markets
// @Description Public listing, most recent date first
// @Tags feiras
// @Produce json
// @Success 200 {array} models.Feira
// @Router /feiras [get]
func ListFeiras(c *gin.Context) {
	feiras, err := feiraService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feiras)
}

// GetFeira godoc
// @Summary Retrieve a market by ID
// @Tags feiras
// @Produce json
// @Param id path int true "Market ID"
// @Success 200 {object} models.Feira
// @Router /feiras/{id} [get]
func GetFeira(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	feira, err := feiraService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feira)
}

// CreateFeira godoc
// @Summary Create a market
// @Tags feiras
// @Accept json
// @Produce json
// @Param feira body dto.FeiraRequest true "Market data"
// @Success 201 {object} models.Feira
// @Router /feiras [post]
func CreateFeira(c *gin.Context) {
	var req dto.FeiraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	feira, err := feiraService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feira)
}

// UpdateFeira godoc
// @Summary Update a market
// @Tags feiras
// @Accept json
// @Produce json
// @Param id path int true "Market ID"
// @Param feira body dto.FeiraRequest true "Market data"
// @Success 200 {object} models.Feira
// @Router /feiras/{id} [put]
func UpdateFeira(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.FeiraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	feira, err := feiraService.Update(id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feira)
}

// PatchFeira godoc
// @Summary Partially update a market
// @Description Only the fields present in the payload are changed
// @Tags feiras
// @Accept json
// @Produce json
// @Param id path int true "Market ID"
// @Param feira body dto.FeiraPatchRequest true "Fields to change"
// @Success 200 {object} models.Feira
// @Router /feiras/{id} [patch]
func PatchFeira(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.FeiraPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	feira, err := feiraService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feira)
}

// DeleteFeira godoc
// @Summary Delete a market and its products
// @Tags feiras
// @Param id path int true "Market ID"
// @Success 204
// @Router /feiras/{id} [delete]
func DeleteFeira(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := feiraService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
