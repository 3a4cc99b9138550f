package handlers

import (
	"errors"
	"net/http"

	request "gestao360/internal/adapter/http/dto/request"
	response "gestao360/internal/adapter/http/dto/response"
	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase"
	"gestao360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid catalog item payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for products and services.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// RegisterItem godoc
// @Summary  Register a catalog item
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    item body request.CatalogItemRequest true "Catalog item"
// @Success  201 {object} response.CatalogItemResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /catalog [post]
func (h *CatalogHandler) RegisterItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.RegisterItem(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCatalogItem(item))
}

// ListItems godoc
// @Summary  List catalog items
// @Tags     catalog
// @Produce  json
// @Param    type query string false "Filter by type" Enums(product, service)
// @Param    search query string false "Substring match on the name"
// @Success  200 {array} response.CatalogItemResponse
// @Router   /catalog [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	itemType := entities.ItemType(c.Query("type"))
	items, err := h.usecase.ListItems(c.Request.Context(), itemType, c.Query("search"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

// GetItem godoc
// @Summary  Get a catalog item by id
// @Tags     catalog
// @Produce  json
// @Param    id path string true "Item id"
// @Success  200 {object} response.CatalogItemResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /catalog/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

// UpdateItem godoc
// @Summary  Patch a catalog item
// @Description  Price changes never retroactively affect existing orders.
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id path string true "Item id"
// @Param    patch body request.CatalogItemPatchRequest true "Fields to change"
// @Success  200 {object} response.CatalogItemResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /catalog/{id} [patch]
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var payload request.CatalogItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

// DeleteItem godoc
// @Summary  Delete a catalog item
// @Description  Idempotent; order lines keep their name and price snapshots.
// @Tags     catalog
// @Param    id path string true "Item id"
// @Success  204
// @Router   /catalog/{id} [delete]
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemInput), errors.Is(err, usecase.ErrInvalidItemType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
