// Package di constructs the object graph. Components are explicit
// services built once at startup and passed by reference; nothing looks
// anything up ambiently.
package di

import (
	"go.uber.org/zap"

	"recipeclient/application/bootstrap"
	"recipeclient/application/notify"
	"recipeclient/application/stores"
	"recipeclient/domain/validators"
	"recipeclient/infrastructure/backend"
	"recipeclient/infrastructure/config"
	"recipeclient/infrastructure/persistence/tokenfile"
	"recipeclient/infrastructure/transport"
	"recipeclient/pkg/auth"
)

// Container holds all application dependencies.
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Notifications *notify.Channel
	Session       *stores.SessionStore
	Recipes       *stores.RecipeCache
	Favorites     *stores.FavoritesCoordinator
	Sequencer     *bootstrap.Sequencer
}

// ProvideLogger creates the logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// InitializeContainer builds the full dependency graph, leaf-first.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	notifications := notify.NewChannel(logger)
	keeper := auth.NewKeeper()
	tokens := tokenfile.NewStore(cfg.TokenPath)

	clientOpts := []transport.Option{transport.WithTimeout(cfg.HTTPTimeout)}
	if cfg.RequestBurst > 0 {
		clientOpts = append(clientOpts, transport.WithThrottle(
			transport.NewThrottle(cfg.RequestBurst, cfg.RequestInterval),
		))
	}
	client := transport.NewClient(cfg.BaseURL, keeper, logger, clientOpts...)
	authAPI := backend.NewAuthAPI(client)
	recipeAPI := backend.NewRecipeAPI(client)

	session := stores.NewSessionStore(authAPI, tokens, keeper, notifications, logger)
	recipes := stores.NewRecipeCache(recipeAPI, validators.NewRecipeValidator(), notifications, logger)
	favorites := stores.NewFavoritesCoordinator(session, recipeAPI, notifications, logger)
	sequencer := bootstrap.NewSequencer(session, favorites, logger)

	return &Container{
		Config:        cfg,
		Logger:        logger,
		Notifications: notifications,
		Session:       session,
		Recipes:       recipes,
		Favorites:     favorites,
		Sequencer:     sequencer,
	}, nil
}
