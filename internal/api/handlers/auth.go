package handlers

import (
	"net/http"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/auth"
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

type redirectResponse struct {
	Redirect string `json:"redirect"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.Validation("malformed form"))
		return
	}

	_, err := h.authService.SignUp(r.Context(), service.SignUpInput{
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password2"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// No auto sign-in after sign-up; the client is pointed at the sign-in
	// page instead.
	writeJSON(w, http.StatusOK, redirectResponse{Redirect: "/sign-in"})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, domain.Validation("malformed form"))
		return
	}

	result, err := h.authService.SignIn(r.Context(), service.SignInInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token, int(auth.SessionLifetime.Seconds()))

	redirect := "/"
	if result.IsAdmin {
		redirect = "/adminpanel"
	}
	writeJSON(w, http.StatusOK, redirectResponse{Redirect: redirect})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context(), middleware.SessionToken(r)); err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, "", -1)
	writeJSON(w, http.StatusOK, redirectResponse{Redirect: "/"})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
	})
}
