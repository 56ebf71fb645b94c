package app

import (
	"context"

	"job-board/internal/config"

	"github.com/sirupsen/logrus"
)

// Bootstrap connects the backing services, starts the WebSocket hub and
// builds the app. The returned cleanup stops the hub and closes connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, func() error, error) {
	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go container.Hub.Run(hubCtx)

	a, err := New(container)
	if err != nil {
		stopHub()
		_ = container.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		stopHub()
		return container.Close()
	}
	return a, cleanup, nil
}
