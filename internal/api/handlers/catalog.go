package handlers

import (
	"net/http"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	authService    *service.AuthService
}

func NewCatalogHandler(catalogService *service.CatalogService, authService *service.AuthService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, authService: authService}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListListed(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.HomepageProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	// The liked flag needs a signed-in user but the page itself is public;
	// an invalid or expired cookie falls back to anonymous.
	var userID uint
	if token := middleware.SessionToken(r); token != "" {
		if session, err := h.authService.ValidateSession(r.Context(), token); err == nil {
			userID = session.UserID
		}
	}

	view, err := h.catalogService.GetProduct(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
