package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"nc-news/internal/repository"
	"nc-news/internal/resilience/circuitbreaker"
)

// SQLSTATE codes the classifier distinguishes.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeInvalidTextRep      = "22P02"
	codeNumericOutOfRange   = "22003"
	codeAdminShutdown       = "57P01"
	codeCrashShutdown       = "57P02"
	codeCannotConnectNow    = "57P03"
	codeTooManyConnections  = "53300"
)

// constraintReferences maps foreign key constraint names to the reference
// they protect. Names follow the schema created by db.MigrateUp.
var constraintReferences = map[string]string{
	"comments_author_fkey":     "author",
	"comments_article_id_fkey": "article",
	"articles_author_fkey":     "author",
	"articles_topic_fkey":      "topic",
}

// classify converts a driver error into a *repository.Failure.
// Context cancellation is passed through wrapped, so callers still see it.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := repository.AsFailure(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return repository.Wrap(op, err)
	}

	f := &repository.Failure{Kind: repository.FailureOther, Op: op, Err: err}

	var pgErr *pgconn.PgError
	var connectErr *pgconn.ConnectError
	switch {
	case errors.As(err, &pgErr):
		f.Kind = classifyCode(pgErr.Code)
		if f.Kind == repository.FailureForeignKey {
			f.Reference = constraintReferences[pgErr.ConstraintName]
		}
	case circuitbreaker.IsRejected(err),
		errors.As(err, &connectErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		f.Kind = repository.FailureUnavailable
	}
	return f
}

func classifyCode(code string) repository.FailureKind {
	switch code {
	case codeForeignKeyViolation:
		return repository.FailureForeignKey
	case codeUniqueViolation:
		return repository.FailureUniqueViolation
	case codeInvalidTextRep, codeNumericOutOfRange:
		return repository.FailureInvalidText
	case codeAdminShutdown, codeCrashShutdown, codeCannotConnectNow, codeTooManyConnections:
		return repository.FailureUnavailable
	}
	if len(code) >= 2 && code[:2] == "08" {
		return repository.FailureUnavailable
	}
	return repository.FailureOther
}
