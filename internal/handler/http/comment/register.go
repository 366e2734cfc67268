package comment

import (
	"net/http"

	"nc-news/internal/common/pagination"
	cmtUC "nc-news/internal/usecase/comment"
)

// Register registers the comment routes with the given mux.
func Register(mux *http.ServeMux, svc cmtUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET /api/articles/{article_id}/comments", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("POST /api/articles/{article_id}/comments", CreateHandler{svc})
	mux.Handle("PATCH /api/comments/{comment_id}", VotesHandler{svc})
	mux.Handle("DELETE /api/comments/{comment_id}", DeleteHandler{svc})
}
