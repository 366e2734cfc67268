package comment

import (
	"net/http"

	"nc-news/internal/common/pagination"
	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/respond"
	cmtUC "nc-news/internal/usecase/comment"
)

// ListHandler serves GET /api/articles/{article_id}/comments.
type ListHandler struct {
	Svc           cmtUC.Service
	PaginationCfg pagination.Config
}

type listResponse struct {
	Comments      []DTO `json:"comments"`
	CommentsTotal int64 `json:"comments_total"`
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID("article_id", r.PathValue("article_id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	result, err := h.Svc.ListByArticle(r.Context(), articleID, params)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(result.Comments))
	for _, c := range result.Comments {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, listResponse{Comments: out, CommentsTotal: result.Total})
}
