package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/middleware"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var produtorService = services.NewProdutorService()

// ListProdutores godoc
// @Summary List producer profiles
// @Tags produtores
// @Produce json
// @Success 200 {array} dto.ProdutorResponse
// @Router /produtores [get]
func ListProdutores(c *gin.Context) {
	produtores, err := produtorService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutorResponses(produtores))
}

// GetProdutor godoc
// @Summary Retrieve a producer by ID
// @Tags produtores
// @Produce json
// @Param id path int true "Producer ID"
// @Success 200 {object} dto.ProdutorResponse
// @Router /produtores/{id} [get]
func GetProdutor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	produtor, err := produtorService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutorResponse(produtor))
}

// CreateProdutor godoc
// @Summary Create the caller's producer profile
// @Tags produtores
// @Accept json
// @Produce json
// @Param produtor body dto.ProdutorRequest true "Producer data"
// @Success 201 {object} dto.ProdutorResponse
// @Router /produtores [post]
func CreateProdutor(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	var req dto.ProdutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produtor, err := produtorService.Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProdutorResponse(produtor))
}

// UpdateProdutor godoc
// @Summary Update a producer profile
// @Tags produtores
// @Accept json
// @Produce json
// @Param id path int true "Producer ID"
// @Param produtor body dto.ProdutorRequest true "Producer data"
// @Success 200 {object} dto.ProdutorResponse
// @Router /produtores/{id} [put]
func UpdateProdutor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ProdutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produtor, err := produtorService.Update(id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutorResponse(produtor))
}

// PatchProdutor godoc
// @Summary Partially update a producer profile
// @Description Only the fields present in the payload are changed
// @Tags produtores
// @Accept json
// @Produce json
// @Param id path int true "Producer ID"
// @Param produtor body dto.ProdutorPatchRequest true "Fields to change"
// @Success 200 {object} dto.ProdutorResponse
// @Router /produtores/{id} [patch]
func PatchProdutor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ProdutorPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produtor, err := produtorService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutorResponse(produtor))
}

// DeleteProdutor godoc
// @Summary Delete a producer and its products
// @Tags produtores
// @Param id path int true "Producer ID"
// @Success 204
// @Router /produtores/{id} [delete]
func DeleteProdutor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := produtorService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
