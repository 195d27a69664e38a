package bootstrap

import (
	"context"

	"havenmart/internal/infra/events"
	"havenmart/internal/pkg/config"
	"havenmart/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (*events.Publisher, error) {
	publisher, cleanup, err := events.NewPublisher(cfg.Events.AMQPURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
