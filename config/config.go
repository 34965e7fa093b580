package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Midtrans Snap. Sandbox is selected when the server key carries
	// the SB- prefix Midtrans uses for sandbox credentials.
	MidtransServerKey string

	// SiteURL is where the payment page sends the donor back after
	// finishing or abandoning a payment.
	SiteURL string

	// AdminPassword is compared as-is on login. When AdminPasswordHash
	// is set it takes precedence and login compares against the bcrypt
	// hash instead.
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenMode    string // "opaque" (default) or "signed"
	AdminTokenSecret  string // HMAC secret for signed mode
	SessionTTLHours   int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBroker string
	KafkaTopic  string

	UploadDir     string
	UploadBaseURL string

	Debug bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	sessionTTL, _ := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if sessionTTL <= 0 {
		sessionTTL = 24
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	return &Config{
		Port:    port,
		GinMode: os.Getenv("GIN_MODE"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		SiteURL:           os.Getenv("SITE_URL"),

		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTokenMode:    os.Getenv("ADMIN_TOKEN_MODE"),
		AdminTokenSecret:  os.Getenv("ADMIN_TOKEN_SECRET"),
		SessionTTLHours:   sessionTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  os.Getenv("KAFKA_TOPIC"),

		UploadDir:     uploadDir,
		UploadBaseURL: os.Getenv("UPLOAD_BASE_URL"),

		Debug: debug,
	}
}
