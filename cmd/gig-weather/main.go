package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "gig-weather/configs"
	"gig-weather/internal/application/controller"
	"gig-weather/internal/application/middleware"
	"gig-weather/internal/application/schedule"
	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/forecastcache"
	apigw "gig-weather/internal/domain/gateway/api"
	cachegw "gig-weather/internal/domain/gateway/cache"
	"gig-weather/internal/domain/gateway/db"
	"gig-weather/internal/domain/usecase/gig"
	"gig-weather/internal/domain/usecase/health"
	"gig-weather/internal/domain/weather"
	gormdb "gig-weather/internal/infra/database/gorm"
	"gig-weather/internal/infra/database/sqldb"
	pkghttp "gig-weather/pkg/http"
	"gig-weather/pkg/log"
	"gig-weather/pkg/msg"
	"gig-weather/pkg/redis"
	"gig-weather/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init database gateways, gorm or plain database/sql
	var gigGateway db.GigGateway
	var healthDBGateway db.HealthDBGateway
	switch resource.GetString("app.db.mode") {
	case "sql":
		sqlDB, err := sqldb.Connect()
		if err != nil {
			log.Fatalf("Fail to connect database: %v", err)
		}
		gigGateway = db.NewSQLGigGateway(sqlDB)
		healthDBGateway = db.NewSQLHealthDBGateway(sqlDB)
	default:
		gormDB, err := gormdb.Connect()
		if err != nil {
			log.Fatalf("Fail to connect database: %v", err)
		}
		gigGateway = db.NewGormGigGateway(gormDB)
		healthDBGateway = db.NewGormHealthDBGateway(gormDB)
	}

	// Init Redis, optional
	var redisClient *redis.Client
	var healthCacheGateway cachegw.HealthCacheGateway = cachegw.NewDisabledHealthCacheGateway()
	if resource.GetBool("app.redis.enabled") {
		config := redis.DefaultConfig()
		config.Addr = resource.GetString("app.redis.addr")
		config.Password = resource.GetString("app.redis.password")
		config.Database = resource.GetInt("app.redis.db")
		redisClient = redis.NewClient(config)
		healthCacheGateway = cachegw.NewRedisHealthCacheGateway(redisClient)
	}

	// Init weather gateways
	clientOptions := pkghttp.ClientOptions{
		ReadTimeout: resource.GetDuration("app.weather.request-timeout"),
		Logger:      pkghttp.NewZapHTTPLogger(),
	}
	forecastGateway := apigw.NewOpenMeteoForecastGateway(resource.GetString("app.weather.forecast.base-url"), clientOptions)

	// Init city resolution, directory or freetext
	var directory *city.Directory
	var fetcher forecastcache.Fetcher
	if resource.GetString("app.city.mode") == "freetext" {
		geocoding := apigw.NewOpenMeteoGeocodingGateway(resource.GetString("app.weather.geocoding.base-url"), clientOptions)
		if redisClient != nil {
			cache := redis.NewCache(redisClient, "geocode", resource.GetDuration("app.redis.geocode-ttl"))
			geocoding = apigw.NewCachingGeocodingGateway(geocoding, cache)
		}
		fetcher = weather.NewGeocodingFetcher(geocoding, forecastGateway)
	} else {
		directory = city.DefaultDirectory()
		fetcher = weather.NewDirectoryFetcher(directory, forecastGateway)
	}

	// Init coordinator and UseCases
	coordinator := forecastcache.New(fetcher, directory)
	gigUseCase := gig.NewGigUseCase(gigGateway, coordinator, directory)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, healthCacheGateway)

	gigUseCase.Start(ctx)
	if err := gigUseCase.Refresh(ctx); err != nil {
		log.Fatalf("Fail to load gigs: %v", err)
	}

	// Init Controllers and Routes
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewGigController(api, gigUseCase).InitGigRoutes()

	// Init Schedule
	expiryScheduler := schedule.NewForecastExpiryScheduler(
		coordinator,
		resource.GetDuration("app.weather.cache.max-age"),
		resource.GetString("app.weather.cache.sweep-cron"),
	)
	expiryScheduler.InitForecastExpiryTasks()

	// Start server
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
