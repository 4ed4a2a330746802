package handlers

import (
	"net/http"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	products, err := h.likeService.List(r.Context(), session.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *LikeHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		err = h.likeService.Like(r.Context(), session.UserID, productID)
	case "remove":
		err = h.likeService.Unlike(r.Context(), session.UserID, productID)
	default:
		err = domain.Validation("unknown like action")
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
