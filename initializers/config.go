package initializers

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	DBDriver          string
	DBUrl             string
	JWTSecret         string
	JWTTTL            time.Duration
	CORSOrigins       []string
	RateLimitRPS      int
	RateLimitBurst    int
	PaymentGatewayURL string
	PaymentGatewayKey string
	PaymentCurrency   string
	S3Bucket          string
	FrontendURL       string
	FromEmail         string
	FromEmailPassword string
	FromEmailSMTP     string
	SMTPAddress       string
}

var AppConfig Config

func LoadConfig() Config {
	AppConfig = Config{
		Port:              getEnv("PORT", "8080"),
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DBUrl:             getEnv("DB_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTTTL:            time.Duration(getEnvInt("JWT_TTL_HOURS", 24*30)) * time.Hour,
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:4200")),
		RateLimitRPS:      getEnvInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 40),
		PaymentGatewayURL: getEnv("PAYMENT_GATEWAY_URL", ""),
		PaymentGatewayKey: getEnv("PAYMENT_GATEWAY_KEY", ""),
		PaymentCurrency:   getEnv("PAYMENT_CURRENCY", "USD"),
		S3Bucket:          getEnv("S3_BUCKET", "storefront"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:4200"),
		FromEmail:         getEnv("FROM_EMAIL", ""),
		FromEmailPassword: getEnv("FROM_EMAIL_PASSWORD", ""),
		FromEmailSMTP:     getEnv("FROM_EMAIL_SMTP", ""),
		SMTPAddress:       getEnv("SMTP_ADDRESS", ""),
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
