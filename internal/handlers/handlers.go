package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"storefront/api/internal/config"
	"storefront/api/internal/graph"
	"storefront/api/internal/mail"
	"storefront/api/internal/middleware"
	"storefront/api/internal/repository"
	"storefront/api/internal/service"
)

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	db     *pgxpool.Pool
	cache  *redis.Client
	users  *repository.UserRepository
	schema graphql.Schema
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, mailer mail.Mailer, images graph.ImageStore, cfg *config.AppConfig) (HandlerSet, error) {
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)

	auth := service.NewAuthService(userRepo, mailer, cache, cfg, log)
	items := service.NewItemService(itemRepo, log)
	carts := service.NewCartService(cartRepo, itemRepo, log)

	resolver := graph.NewResolver(auth, items, carts, images, log)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return HandlerSet{}, fmt.Errorf("build schema: %w", err)
	}

	return HandlerSet{
		log:    log,
		cfg:    cfg,
		db:     db,
		cache:  cache,
		users:  userRepo,
		schema: schema,
	}, nil
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	gql := router.Group("/graphql")
	gql.Use(middleware.Session(h.cfg, h.users))
	gql.POST("", h.GraphQL)
}
