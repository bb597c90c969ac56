package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katzedaze/portfolio/pkg/configuration"
	"github.com/katzedaze/portfolio/pkg/constants"
)

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger falls back to the configuration logger when no request-scoped
// entry is present.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry)
	if !ok {
		return logrus.NewEntry(configuration.Use().Logger())
	}
	return logger
}
