package di

import (
	"context"
	"html/template"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"propmap-server/api"
	"propmap-server/api/webflow"
	"propmap-server/config"
	"propmap-server/dao/redis"
	"propmap-server/db"
	"propmap-server/server"
	"propmap-server/server/handlers"
	services "propmap-server/service"
	"propmap-server/widget"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisListingDao       *redis.RedisListingDAO
	PropertiesAPI         webflow.PropertiesAPI
	WidgetBuilder         *widget.Builder
	MapWidgetService      *services.MapWidgetService
	IndexRefresherService *services.IndexRefresherService
	WidgetHandler         *handlers.WidgetHandler
	ListingHandler        *handlers.ListingHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	PropMapHttpServer     *server.PropMapHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Infof("[DI] Initializing container - env: %s", env)
	ctx := context.Background()

	// Redis is optional. Without it the widget still builds from the live
	// fetch; only the nearby-listings API is disabled.
	var redisClient db.RedisClient
	var redisListingDao *redis.RedisListingDAO
	if addr := config.GetRedisAddress(); addr != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		geoClient := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := geoClient.Ping(); err != nil {
			log.Warnf("[DI] Failed to connect to Redis at %s, listings index disabled: %v", addr, err)
		} else {
			redisClient = geoClient
			redisListingDao = redis.NewRedisListingDAO(geoClient)
		}
	} else {
		log.Infof("[DI] No Redis address configured, listings index disabled")
	}

	// Initialize PropertiesAPI - fixture-backed outside prod
	var propertiesApiClient webflow.PropertiesAPI
	if env != "prod" {
		propertiesApiClient = webflow.NewPropertiesApiClientMock()
		log.Infof("[DI] Using mock properties api")
	} else {
		log.Infof("[DI] Using prod properties api")
		httpClient := api.NewHTTPClientWithTimeout(
			config.GetListingsAPIBase(),
			time.Duration(config.GetFetchTimeoutSeconds())*time.Second,
		)
		propertiesApiClient = webflow.NewPropertiesApiClient(httpClient)
	}

	// The cluster capability is decided here, once; the builder never
	// probes for it again.
	var clusterCapability widget.ClusterCapability
	if config.IsClusteringEnabled() {
		clusterCapability = widget.NewMarkerClusterCapability()
	} else {
		log.Infof("[DI] Marker clustering disabled")
	}

	widgetBuilder := widget.NewBuilder(config.GetMapContainerID(), clusterCapability)

	// Initialize service layer
	mapWidgetService := services.NewMapWidgetService(propertiesApiClient, redisListingDao, widgetBuilder)
	indexRefresherService := services.NewIndexRefresherService(mapWidgetService)

	// Initialize handlers
	widgetPage := template.Must(template.ParseFiles(config.GetTemplatePath(config.WIDGET_PAGE_TEMPLATE)))
	widgetHandler := handlers.NewWidgetHandler(mapWidgetService, widgetPage)
	listingHandler := handlers.NewListingHandler(mapWidgetService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(widgetHandler, listingHandler, muxRouter)

	// Initialize propmap server
	propMapHttpServer := server.NewPropMapHttpServer(router, muxRouter, config.GetListenAddress())

	return &Container{
		RedisClient:           redisClient,
		RedisListingDao:       redisListingDao,
		PropertiesAPI:         propertiesApiClient,
		WidgetBuilder:         widgetBuilder,
		MapWidgetService:      mapWidgetService,
		IndexRefresherService: indexRefresherService,
		WidgetHandler:         widgetHandler,
		ListingHandler:        listingHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		PropMapHttpServer:     propMapHttpServer,
	}
}
