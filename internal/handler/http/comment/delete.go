package comment

import (
	"net/http"

	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/respond"
	cmtUC "nc-news/internal/usecase/comment"
)

// DeleteHandler serves DELETE /api/comments/{comment_id}. Success has no body.
type DeleteHandler struct{ Svc cmtUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("comment_id", r.PathValue("comment_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
