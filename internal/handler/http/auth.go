package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SignUpSuccess(data), http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	signedIn, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+signedIn.Token.String())
	utils.WriteJSON(w, models.SignInSuccess(signedIn.User), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.services.AuthService.ChangePassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ChangePasswordSuccess(data), http.StatusOK)
}

// me answers with the user described by the verified bearer token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext)
		return
	}

	utils.WriteJSON(w, models.NewResponse(models.CodeSuccess, models.UserData{
		Email: claims.Email,
		Name:  claims.Name,
	}), http.StatusOK)
}

// decodeJSON decodes the request body into dst. Unknown fields are ignored.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
