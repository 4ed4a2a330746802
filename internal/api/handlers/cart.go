package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	view, err := h.cartService.View(r.Context(), session.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.Validation("malformed form"))
		return
	}
	productID, err := parseID(r.PostFormValue("product_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch r.PostFormValue("action") {
	case "add":
		quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
		if err != nil {
			writeError(w, r, domain.Validation("invalid quantity, please only add 1 to 32 of an item"))
			return
		}
		if err := h.cartService.Add(r.Context(), session.UserID, productID, quantity); err != nil {
			writeError(w, r, err)
			return
		}
	case "remove":
		if err := h.cartService.Remove(r.Context(), session.UserID, productID); err != nil {
			writeError(w, r, err)
			return
		}
	default:
		writeError(w, r, domain.Validation("unknown cart action"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
