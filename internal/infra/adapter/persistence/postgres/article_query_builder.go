package postgres

import (
	"fmt"
	"strings"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

// sortColumns maps accepted sort_by values to the SQL expression they sort on.
// Only values from this map are ever interpolated into ORDER BY.
var sortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"body":            "articles.body",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// sortOrders maps accepted order values (lowercased) to SQL keywords.
var sortOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

const articleListSelect = `
SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
       articles.created_at, articles.votes, articles.article_img_url,
       CAST(COUNT(comments.comment_id) AS INT) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

// ArticleQueryBuilder composes the article listing query.
// It validates sort_by and order against fixed allow-lists before any SQL is
// produced, and binds all user-supplied values as $N placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// ResolveSort validates sortBy and order and returns the SQL column expression
// and direction keyword. Empty values take the defaults (created_at, desc).
// Order is matched case-insensitively; sortBy is matched exactly.
func (qb *ArticleQueryBuilder) ResolveSort(sortBy, order string) (column, direction string, err error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if order == "" {
		order = defaultOrder
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		return "", "", entity.ErrInvalidSortColumn
	}
	direction, ok = sortOrders[strings.ToLower(order)]
	if !ok {
		return "", "", entity.ErrInvalidSortOrder
	}
	return column, direction, nil
}

// BuildWhereClause builds the WHERE clause for the optional topic filter.
// The topic is matched as a case-insensitive substring with LIKE wildcards escaped.
// Returns an empty clause when no filter applies.
func (qb *ArticleQueryBuilder) BuildWhereClause(topic *string) (clause string, args []any) {
	if topic == nil {
		return "", nil
	}
	return "WHERE articles.topic ILIKE $1", []any{"%" + escapeLike(*topic) + "%"}
}

// BuildListQuery returns the full listing query and its arguments.
// It fails with entity.ErrInvalidSortColumn or entity.ErrInvalidSortOrder
// before producing any SQL when the sort inputs are not allow-listed.
func (qb *ArticleQueryBuilder) BuildListQuery(q repository.ArticleListQuery) (string, []any, error) {
	column, direction, err := qb.ResolveSort(q.SortBy, q.Order)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(articleListSelect)

	where, args := qb.BuildWhereClause(q.Topic)
	if where != "" {
		sb.WriteString("\n")
		sb.WriteString(where)
	}

	sb.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&sb, "\nORDER BY %s %s", column, direction)
	if column != sortColumns["article_id"] {
		// Deterministic order among equal sort keys.
		fmt.Fprintf(&sb, ", articles.article_id %s", direction)
	}

	if q.Page.Limit > 0 {
		fmt.Fprintf(&sb, "\nLIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, q.Page.Limit, q.Page.Offset)
	}

	return sb.String(), args, nil
}

// escapeLike escapes the LIKE metacharacters %, _ and the escape character itself.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
