// Package topic provides HTTP handlers for listing and creating topics.
package topic

import (
	"net/http"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/request"
	"nc-news/internal/handler/http/respond"
	topicUC "nc-news/internal/usecase/topic"
)

// DTO represents the JSON structure for topic data transfer.
type DTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func toDTO(t *entity.Topic) DTO {
	return DTO{Slug: t.Slug, Description: t.Description}
}

// Register registers the topic routes with the given mux.
func Register(mux *http.ServeMux, svc topicUC.Service) {
	mux.Handle("GET /api/topics", ListHandler{svc})
	mux.Handle("POST /api/topics", CreateHandler{svc})
}

// ListHandler serves GET /api/topics.
type ListHandler struct{ Svc topicUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, toDTO(t))
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"topics": out})
}

// CreateHandler serves POST /api/topics.
type CreateHandler struct{ Svc topicUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTopic
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}

	topic, err := h.Svc.Create(r.Context(), topicUC.CreateInput{Slug: req.Slug, Description: req.Description})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]DTO{"topic": toDTO(topic)})
}
