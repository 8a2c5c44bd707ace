package composables

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/deskflow/deskflow/pkg/constants"
	"github.com/deskflow/deskflow/pkg/types"
)

var (
	ErrNoUserIDInContext    = errors.New("no user id found in context")
	ErrNoLoggerInContext    = errors.New("no logger found in context")
	ErrNavItemsNotFound     = errors.New("no navigation items found in context")
	ErrNoRequestIDInContext = errors.New("no request id found in context")
)

// UseUserID returns the gateway-authenticated user ID from the context.
func UseUserID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoUserIDInContext
	}
	return id, nil
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.UserIDKey, id)
}

// UseLogger returns the request-scoped logger.
func UseLogger(ctx context.Context) (*logrus.Entry, error) {
	logger, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry)
	if !ok {
		return nil, ErrNoLoggerInContext
	}
	return logger, nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseNavItems returns the filtered navigation items computed for the
// current request.
func UseNavItems(ctx context.Context) ([]types.NavigationItem, error) {
	items, ok := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	if !ok {
		return nil, ErrNavItemsNotFound
	}
	return items, nil
}

func WithNavItems(ctx context.Context, items []types.NavigationItem) context.Context {
	return context.WithValue(ctx, constants.NavItemsKey, items)
}

// UseRequestID returns the inbound or generated request ID.
func UseRequestID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(constants.RequestIDKey).(string)
	if !ok {
		return "", ErrNoRequestIDInContext
	}
	return id, nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, id)
}
