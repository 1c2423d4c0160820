package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shieldpay-labs/shieldpay-backend/internal/auth"
	"github.com/shieldpay-labs/shieldpay-backend/internal/docs"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/middleware"
	"github.com/shieldpay-labs/shieldpay-backend/internal/pkg/model"
	"github.com/shieldpay-labs/shieldpay-backend/internal/registration"
	"github.com/shieldpay-labs/shieldpay-backend/internal/wallet"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	setupViper()
	setupZerolog()
	db := setupDb()
	apiRouter := setupApiRouter(db)

	port := viper.GetString("PORT")
	server := &http.Server{
		Addr:         port,
		Handler:      apiRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	server.ListenAndServe()
}

func setupDb() *gorm.DB {
	dbUrl := viper.GetString("DB_URL")

	// TranslateError so unique-constraint violations surface as
	// gorm.ErrDuplicatedKey; the store is the sole arbiter of races on
	// email and wallet address.
	db, err := gorm.Open(postgres.Open(dbUrl), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if err := db.AutoMigrate(&model.User{}, &model.Wallet{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database schema")
	}

	sqlDb, _ := db.DB()

	sqlDb.SetMaxOpenConns(50)
	sqlDb.SetConnMaxLifetime(time.Minute * 10)

	return db
}

func setupApiRouter(db *gorm.DB) *gin.Engine {
	apiRouter := gin.Default()
	routerGroup := apiRouter.Group("")

	middleware.RegisterGlobalMiddleware(apiRouter)

	apiRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ShieldPay API is running!")
	})

	docs.RegisterRoutes(routerGroup)
	registration.RegisterRoutes(routerGroup, db)
	auth.RegisterRoutes(routerGroup, db)
	wallet.RegisterRoutes(routerGroup, db)

	return apiRouter
}

func setupViper() {
	viper.AutomaticEnv()
	viper.SetConfigFile("./.env")
	viper.ReadInConfig()

	viper.SetDefault("PORT", ":3000")
	viper.SetDefault("JWT_SECRET", "dev_secret")
}

func setupZerolog() {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
