package comment

import (
	"net/http"

	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/request"
	"nc-news/internal/handler/http/respond"
	cmtUC "nc-news/internal/usecase/comment"
)

// VotesHandler serves PATCH /api/comments/{comment_id}.
type VotesHandler struct{ Svc cmtUC.Service }

func (h VotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("comment_id", r.PathValue("comment_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	patch, err := request.DecodeVotePatch(r)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	comment, err := h.Svc.UpdateVotes(r.Context(), id, patch)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, commentResponse{Comment: toDTO(comment)})
}
