package article

import (
	"errors"
	"log/slog"
	"net/http"

	"nc-news/internal/common/pagination"
	"nc-news/internal/domain/entity"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/handler/http/respond"
	artUC "nc-news/internal/usecase/article"
)

// ListHandler serves GET /api/articles.
type ListHandler struct {
	Svc           artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

type listResponse struct {
	Articles []DTO `json:"articles"`
}

// ServeHTTP lists articles filtered by ?topic (case-insensitive substring),
// sorted by ?sort_by and ?order, and optionally paged by ?limit and ?p.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		metrics.RecordArticleListRejected("pagination")
		respond.DomainError(w, r, err)
		return
	}

	q := r.URL.Query()
	in := artUC.ListInput{
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Page:   params,
	}
	if q.Has("topic") {
		topic := q.Get("topic")
		in.Topic = &topic
	}

	articles, err := h.Svc.List(r.Context(), in)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidSortColumn) || errors.Is(err, entity.ErrInvalidSortOrder) {
			h.Logger.DebugContext(r.Context(), "article listing rejected",
				slog.String("sort_by", in.SortBy),
				slog.String("order", in.Order),
				slog.Any("error", err))
		}
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTOWithCount(a))
	}
	respond.JSON(w, http.StatusOK, listResponse{Articles: out})
}
