package article

import (
	"net/http"

	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/request"
	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
)

// VotesHandler serves PATCH /api/articles/{article_id} with a body of {"inc_votes": n}.
type VotesHandler struct{ Svc artUC.Service }

func (h VotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", r.PathValue("article_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	patch, err := request.DecodeVotePatch(r)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	article, err := h.Svc.UpdateVotes(r.Context(), id, patch)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, articleResponse{Article: toDTO(article)})
}
