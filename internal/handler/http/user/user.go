// Package user provides HTTP handlers for listing users and looking one up.
package user

import (
	"net/http"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/respond"
	userUC "nc-news/internal/usecase/user"
)

// DTO represents the JSON structure for user data transfer.
type DTO struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func toDTO(u *entity.User) DTO {
	return DTO{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

// Register registers the user routes with the given mux.
func Register(mux *http.ServeMux, svc userUC.Service) {
	mux.Handle("GET /api/users", ListHandler{svc})
	mux.Handle("GET /api/users/{username}", GetHandler{svc})
}

// ListHandler serves GET /api/users.
type ListHandler struct{ Svc userUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"users": out})
}

// GetHandler serves GET /api/users/{username}.
type GetHandler struct{ Svc userUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]DTO{"user": toDTO(u)})
}
