package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are evaluated in order. Segments accept any value, not only
// digits, so malformed ids still collapse into the template.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/:article_id"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/comments$`), Template: "/api/articles/:article_id/comments"},
	{Pattern: regexp.MustCompile(`^/api/comments/[^/]+$`), Template: "/api/comments/:comment_id"},
	{Pattern: regexp.MustCompile(`^/api/users/[^/]+$`), Template: "/api/users/:username"},
}

// knownPaths are static routes that keep their own label.
var knownPaths = map[string]struct{}{
	"/api":          {},
	"/api/articles": {},
	"/api/topics":   {},
	"/api/users":    {},
	"/health":       {},
	"/ready":        {},
	"/live":         {},
	"/metrics":      {},
}

// UnmatchedPath is the label for every path no route serves.
const UnmatchedPath = "unmatched"

// NormalizePath collapses dynamic URL paths into route templates to bound
// metrics label cardinality.
//
// Examples:
//
//	NormalizePath("/api/articles/3")          // "/api/articles/:article_id"
//	NormalizePath("/api/articles/3/comments") // "/api/articles/:article_id/comments"
//	NormalizePath("/api/users/butter_bridge") // "/api/users/:username"
//	NormalizePath("/api/topics/")             // "/api/topics"
//	NormalizePath("/wp-admin")                // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return UnmatchedPath
}
