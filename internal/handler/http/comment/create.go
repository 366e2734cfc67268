package comment

import (
	"net/http"

	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/request"
	"nc-news/internal/handler/http/respond"
	cmtUC "nc-news/internal/usecase/comment"
)

// CreateHandler serves POST /api/articles/{article_id}/comments.
type CreateHandler struct{ Svc cmtUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID("article_id", r.PathValue("article_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	var req request.CreateComment
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}

	comment, err := h.Svc.Add(r.Context(), articleID, cmtUC.CreateInput{
		Author: req.AuthorName(),
		Body:   req.Body,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, commentResponse{Comment: toDTO(comment)})
}
