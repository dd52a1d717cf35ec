package main

import (
	"context"
	"log"
	"time"

	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/gateway"
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/routes"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const paymentGatewayTimeout = 15 * time.Second

func init() {
	initializers.LoadEnv()
	initializers.LoadConfig()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func wireCollaborators(cfg initializers.Config) {
	if cfg.PaymentGatewayURL != "" {
		controllers.PaymentGateway = gateway.NewRestGateway(cfg.PaymentGatewayURL, cfg.PaymentGatewayKey, paymentGatewayTimeout)
		log.Println("Payments go to", cfg.PaymentGatewayURL)
	} else {
		controllers.PaymentGateway = gateway.OfflineGateway{}
		log.Println("PAYMENT_GATEWAY_URL not set, approving payments offline.")
	}

	images, err := utils.NewS3ImageStore(context.Background(), cfg.S3Bucket)
	if err != nil {
		log.Println("Image uploads disabled:", err)
	} else {
		controllers.Images = images
	}

	controllers.Mailer = utils.SMTPMailer{
		From:     cfg.FromEmail,
		Password: cfg.FromEmailPassword,
		Host:     cfg.FromEmailSMTP,
		Address:  cfg.SMTPAddress,
	}
}

func main() {
	cfg := initializers.AppConfig
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	wireCollaborators(cfg)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.Setup(server, cfg)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
