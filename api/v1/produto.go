package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/middleware"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var produtoService = services.NewProdutoService()

// ListProdutos godoc
// @Summary List products
// @Description Public catalog with optional name and price filters.
// @Description Authenticated producers only see their own inventory.
// @Tags produtos
// @Produce json
// @Param nome query string false "Case-insensitive substring match on name"
// @Param preco_max query number false "Maximum price"
// @Success 200 {array} dto.ProdutoResponse
// @Router /produtos [get]
func ListProdutos(c *gin.Context) {
	filter, err := parseProdutoFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	viewer, _ := middleware.CurrentUser(c)
	produtos, err := produtoService.List(viewer, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponses(produtos))
}

// MeusProdutos godoc
// @Summary List the caller's own products
// @Tags produtos
// @Produce json
// @Success 200 {array} dto.ProdutoResponse
// @Router /produtos/meus [get]
func MeusProdutos(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	filter, err := parseProdutoFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	produtos, err := produtoService.Mine(user, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponses(produtos))
}

// GetProduto godoc
// @Summary Retrieve a product by ID
// @Tags produtos
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProdutoResponse
// @Router /produtos/{id} [get]
func GetProduto(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	produto, err := produtoService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(produto))
}

// CreateProduto godoc
// @Summary Create a product for the caller's producer profile
// @Tags produtos
// @Accept json
// @Produce json
// @Param produto body dto.ProdutoRequest true "Product data"
// @Success 201 {object} dto.ProdutoResponse
// @Router /produtos [post]
func CreateProduto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	var req dto.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produto, err := produtoService.Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProdutoResponse(produto))
}

// UpdateProduto godoc
// @Summary Update a product (owner or moderator)
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param produto body dto.ProdutoRequest true "Product data"
// @Success 200 {object} dto.ProdutoResponse
// @Router /produtos/{id} [put]
func UpdateProduto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produto, err := produtoService.Update(user, id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(produto))
}

// PatchProduto godoc
// @Summary Partially update a product (owner or moderator)
// @Description Only the fields present in the payload are changed
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param produto body dto.ProdutoPatchRequest true "Fields to change"
// @Success 200 {object} dto.ProdutoResponse
// @Router /produtos/{id} [patch]
func PatchProduto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ProdutoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	produto, err := produtoService.Update(user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(produto))
}

// DeleteProduto godoc
// @Summary Delete a product (owner or moderator)
// @Tags produtos
// @Param id path int true "Product ID"
// @Success 204
// @Router /produtos/{id} [delete]
func DeleteProduto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := produtoService.Delete(user, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseProdutoFilter reads the nome and preco_max query parameters
func parseProdutoFilter(c *gin.Context) (dto.ProdutoFilter, error) {
	filter := dto.ProdutoFilter{Nome: c.Query("nome")}

	if raw := c.Query("preco_max"); raw != "" {
		precoMax, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, services.NewValidationError("preco_max", "Valor inválido.")
		}
		filter.PrecoMax = &precoMax
	}
	return filter, nil
}
