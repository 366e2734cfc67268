// Package failure translates typed storage failures into the domain error taxonomy.
package failure

import (
	"fmt"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

// Normalize maps a storage error to the taxonomy in package entity.
// target names the entity the caller was operating on and is used for
// not-found results (e.g. "article", "comment"). Errors that carry no
// repository.Failure, and failures of kind FailureOther, are returned unchanged.
//
// Mapped errors keep the original failure in their chain for logging.
func Normalize(err error, target string) error {
	if err == nil {
		return nil
	}
	f, ok := repository.AsFailure(err)
	if !ok {
		return err
	}

	switch f.Kind {
	case repository.FailureNotFound:
		return entity.NotFound(target)
	case repository.FailureForeignKey:
		switch f.Reference {
		case "author":
			return fmt.Errorf("%w: %w", entity.ErrInvalidAuthor, err)
		case "article", "topic":
			return entity.NotFound(f.Reference)
		default:
			return fmt.Errorf("%w: %w", entity.ErrInvalidInput, err)
		}
	case repository.FailureInvalidText:
		return fmt.Errorf("%w: %w", entity.ErrInvalidInput, err)
	case repository.FailureUniqueViolation:
		return fmt.Errorf("%w: %w", entity.ErrAlreadyExists, err)
	case repository.FailureUnavailable:
		return fmt.Errorf("%w: %w", entity.ErrStorageUnavailable, err)
	default:
		return err
	}
}
