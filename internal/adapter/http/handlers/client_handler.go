package handlers

import (
	"errors"
	"net/http"

	request "gestao360/internal/adapter/http/dto/request"
	response "gestao360/internal/adapter/http/dto/response"
	"gestao360/internal/usecase"
	"gestao360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

// ClientHandler handles HTTP requests for the client collection.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// RegisterClient godoc
// @Summary  Register a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    client body request.ClientRequest true "Client"
// @Success  201 {object} response.ClientResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.RegisterClient(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Param    search query string false "Substring match on name, email or phone"
// @Success  200 {array} response.ClientResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary  Get a client by id
// @Tags     clients
// @Produce  json
// @Param    id path string true "Client id"
// @Success  200 {object} response.ClientResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Patch a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id path string true "Client id"
// @Param    patch body request.ClientPatchRequest true "Fields to change"
// @Success  200 {object} response.ClientResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary  Delete a client
// @Description  Idempotent; deleting an absent client is a no-op. Orders keep their client-name snapshot.
// @Tags     clients
// @Param    id path string true "Client id"
// @Success  204
// @Router   /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
