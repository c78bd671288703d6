package service

import (
	"context"
	"errors"
	"fmt"

	"restaurant/events"
	"restaurant/logger"
	"restaurant/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("forbidden")
)

func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// storeErr converts repository errors for entity/id into service errors.
func storeErr(err error, entity string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(entity, id)
	case errors.Is(err, repository.ErrDuplicate):
		return conflict("%s already exists", entity)
	case errors.Is(err, repository.ErrForeignKey):
		return conflict("%s is referenced by other records", entity)
	}
	return err
}

// publish sends event and only logs a failure; the originating write has already committed.
func publish(ctx context.Context, publisher events.Publisher, log *logger.Logger, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("failed to publish event", "type", event.Type, "entity_id", event.EntityID, "error", err)
	}
}

func notFoundBy(entity, field, value string) error {
	return fmt.Errorf("%w: %s with %s %q", ErrNotFound, entity, field, value)
}
