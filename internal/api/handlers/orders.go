package handlers

import (
	"net/http"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	orders, err := h.orderService.List(r.Context(), session.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Details(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	orderID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	details, err := h.orderService.Details(r.Context(), orderID, session.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())

	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.Validation("malformed form"))
		return
	}

	order, err := h.orderService.Checkout(r.Context(), session.UserID, service.CheckoutInput{
		CardNumber:    r.PostFormValue("cardnum"),
		Expiry:        r.PostFormValue("expiry"),
		CVV:           r.PostFormValue("cvv"),
		RecipientName: r.PostFormValue("recipient_name"),
		Line1:         r.PostFormValue("line_1"),
		Line2:         r.PostFormValue("line_2"),
		Postcode:      r.PostFormValue("postcode"),
		County:        r.PostFormValue("county"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint{"orderId": order.ID})
}
