package article

import (
	"net/http"

	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
)

// GetHandler serves GET /api/articles/{article_id}.
type GetHandler struct{ Svc artUC.Service }

type articleResponse struct {
	Article DTO `json:"article"`
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", r.PathValue("article_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, articleResponse{Article: toDTOWithCount(*article)})
}
