package article

import (
	"log/slog"
	"net/http"

	"nc-news/internal/common/pagination"
	artUC "nc-news/internal/usecase/article"
)

// Register registers the article routes with the given mux.
func Register(mux *http.ServeMux, svc artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /api/articles/{article_id}", GetHandler{svc})
	mux.Handle("PATCH /api/articles/{article_id}", VotesHandler{svc})
}
