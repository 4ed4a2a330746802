package handlers

import (
	"net/http"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
)

// maxUploadBytes caps product image uploads.
const maxUploadBytes = 10 << 20

type AdminHandler struct {
	catalogService *service.CatalogService
}

func NewAdminHandler(catalogService *service.CatalogService) *AdminHandler {
	return &AdminHandler{catalogService: catalogService}
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, domain.Validation("incorrect form fields"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, r, domain.Validation("incorrect form fields"))
		return
	}
	defer file.Close()

	product, err := h.catalogService.AddProduct(r.Context(), service.AddProductInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Cost:        r.FormValue("cost"),
		Image:       file,
		ImageName:   header.Filename,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.formProductID(w, r)
	if !ok {
		return
	}
	if err := h.catalogService.RemoveProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) UnlistProduct(w http.ResponseWriter, r *http.Request) {
	h.setListed(w, r, false)
}

func (h *AdminHandler) RelistProduct(w http.ResponseWriter, r *http.Request) {
	h.setListed(w, r, true)
}

func (h *AdminHandler) setListed(w http.ResponseWriter, r *http.Request, listed bool) {
	id, ok := h.formProductID(w, r)
	if !ok {
		return
	}
	if err := h.catalogService.SetListed(r.Context(), id, listed); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) formProductID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.Validation("malformed form"))
		return 0, false
	}
	id, err := parseID(r.PostFormValue("id"))
	if err != nil {
		writeError(w, r, err)
		return 0, false
	}
	return id, true
}
