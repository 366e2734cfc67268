package postgres_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"nc-news/internal/domain/entity"
	pg "nc-news/internal/infra/adapter/persistence/postgres"
	"nc-news/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestArticleQueryBuilder_SortGrid(t *testing.T) {
	columns := map[string]string{
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
	orders := map[string]string{"asc": "ASC", "desc": "DESC", "ASC": "ASC", "Desc": "DESC"}

	qb := pg.NewArticleQueryBuilder()
	for sortBy, expr := range columns {
		for order, dir := range orders {
			t.Run(sortBy+"_"+order, func(t *testing.T) {
				query, args, err := qb.BuildListQuery(repository.ArticleListQuery{SortBy: sortBy, Order: order})
				if err != nil {
					t.Fatalf("BuildListQuery err=%v", err)
				}
				want := fmt.Sprintf("ORDER BY %s %s", expr, dir)
				if !strings.Contains(query, want) {
					t.Errorf("query missing %q:\n%s", want, query)
				}
				if sortBy != "article_id" && !strings.Contains(query, "articles.article_id "+dir) {
					t.Errorf("query missing tie-break in direction %s:\n%s", dir, query)
				}
				if len(args) != 0 {
					t.Errorf("args = %v, want none", args)
				}
			})
		}
	}
}

func TestArticleQueryBuilder_Defaults(t *testing.T) {
	query, _, err := pg.NewArticleQueryBuilder().BuildListQuery(repository.ArticleListQuery{})
	if err != nil {
		t.Fatalf("BuildListQuery err=%v", err)
	}
	if !strings.Contains(query, "ORDER BY articles.created_at DESC, articles.article_id DESC") {
		t.Errorf("default ordering not applied:\n%s", query)
	}
	if strings.Contains(query, "WHERE") || strings.Contains(query, "LIMIT") {
		t.Errorf("unexpected filter or pagination:\n%s", query)
	}
}

func TestArticleQueryBuilder_RejectsUnlistedInput(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		order   string
		wantErr error
	}{
		{name: "unknown column", sortBy: "nonsense", wantErr: entity.ErrInvalidSortColumn},
		{name: "injection in column", sortBy: "votes; DROP TABLE articles", wantErr: entity.ErrInvalidSortColumn},
		{name: "qualified column", sortBy: "articles.votes", wantErr: entity.ErrInvalidSortColumn},
		{name: "column case differs", sortBy: "VOTES", wantErr: entity.ErrInvalidSortColumn},
		{name: "unknown order", order: "sideways", wantErr: entity.ErrInvalidSortOrder},
		{name: "injection in order", order: "asc; --", wantErr: entity.ErrInvalidSortOrder},
		{name: "column checked first", sortBy: "x", order: "y", wantErr: entity.ErrInvalidSortColumn},
	}

	qb := pg.NewArticleQueryBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := qb.BuildListQuery(repository.ArticleListQuery{SortBy: tt.sortBy, Order: tt.order})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if query != "" || args != nil {
				t.Errorf("expected no SQL on rejection, got %q %v", query, args)
			}
		})
	}
}

func TestArticleQueryBuilder_TopicFilter(t *testing.T) {
	tests := []struct {
		topic   string
		wantArg string
	}{
		{topic: "mitch", wantArg: "%mitch%"},
		{topic: "100%", wantArg: `%100\%%`},
		{topic: "snake_case", wantArg: `%snake\_case%`},
		{topic: `back\slash`, wantArg: `%back\\slash%`},
		{topic: "", wantArg: "%%"},
	}

	qb := pg.NewArticleQueryBuilder()
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(strPtr(tt.topic))
			if clause != "WHERE articles.topic ILIKE $1" {
				t.Errorf("clause = %q", clause)
			}
			if len(args) != 1 || args[0] != tt.wantArg {
				t.Errorf("args = %v, want [%s]", args, tt.wantArg)
			}
		})
	}

	clause, args := qb.BuildWhereClause(nil)
	if clause != "" || args != nil {
		t.Errorf("nil topic produced %q %v", clause, args)
	}
}

func TestArticleQueryBuilder_Pagination(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	query, args, err := qb.BuildListQuery(repository.ArticleListQuery{
		Topic: strPtr("cats"),
		Page:  repository.Page{Limit: 10, Offset: 20},
	})
	if err != nil {
		t.Fatalf("BuildListQuery err=%v", err)
	}
	if !strings.HasSuffix(query, "LIMIT $2 OFFSET $3") {
		t.Errorf("placeholders not numbered after the topic filter:\n%s", query)
	}
	if len(args) != 3 || args[1] != 10 || args[2] != 20 {
		t.Errorf("args = %v", args)
	}

	query, args, err = qb.BuildListQuery(repository.ArticleListQuery{Page: repository.Page{Limit: 5}})
	if err != nil {
		t.Fatalf("BuildListQuery err=%v", err)
	}
	if !strings.HasSuffix(query, "LIMIT $1 OFFSET $2") || len(args) != 2 {
		t.Errorf("unexpected pagination without filter: %s %v", query, args)
	}
}
