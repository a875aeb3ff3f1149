package http

import (
	"net/http"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

// ClientsHandler handles the client catalog endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func toClientInfo(c domain.Client) portfoliosdk.ClientInfo {
	return portfoliosdk.ClientInfo{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Register a client
//	@Description	Registers a new client. Email must be unique; status defaults to active when omitted.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portfoliosdk.CreateClientRequest		true	"Client registration request"
//	@Success		201		{object}	portfoliosdk.ClientInfo					"Created client"
//	@Failure		400		{object}	portfoliosdk.ValidationErrorResponse	"code, message, details"
//	@Failure		409		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portfoliosdk.CreateClientRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	client, err := h.ClientService.Create(ctx, req.Name, req.Email, status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClientInfo(client))
}

// HandleGet handles GET /v1/clients/{id}
//
//	@Summary		Get a client
//	@Description	Returns a single client by id.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int							true	"Client id"
//	@Success		200	{object}	portfoliosdk.ClientInfo		"Client"
//	@Failure		400	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	client, err := h.ClientService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientInfo(client))
}

// HandleList handles GET /v1/clients
//
//	@Summary		List clients
//	@Description	Returns all registered clients.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{object}	portfoliosdk.ListClientsResponse	"List of clients"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse			"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.ClientService.List(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := portfoliosdk.ListClientsResponse{
		Clients: make([]portfoliosdk.ClientInfo, len(clients)),
	}
	for i, client := range clients {
		response.Clients[i] = toClientInfo(client)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleUpdate handles PATCH /v1/clients/{id}
//
//	@Summary		Update a client
//	@Description	Applies a partial update. Omitted fields stay unchanged.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Client id"
//	@Param			request	body		portfoliosdk.UpdateClientRequest		true	"Fields to update"
//	@Success		200		{object}	portfoliosdk.ClientInfo					"Updated client"
//	@Failure		400		{object}	portfoliosdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/clients/{id} [patch].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req portfoliosdk.UpdateClientRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	client, err := h.ClientService.Update(ctx, id, domain.ClientPatch{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientInfo(client))
}
