package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Object storage: s3 or gcs
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Google Cloud Storage configuration
	GCSBucket          string `yaml:"GCS_BUCKET"`
	GCSCredentialsFile string `yaml:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Gemini API configuration
	GeminiAPIKey      string `yaml:"GEMINI_API_KEY"`
	GeminiModel       string `yaml:"GEMINI_MODEL"`
	GeminiVisionModel string `yaml:"GEMINI_VISION_MODEL"`

	// Redis and RabbitMQ
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       string `yaml:"REDIS_DB"`
	RabbitMQURL   string `yaml:"RABBITMQ_URL"`
}

var config Config

// LoadConfig reads config.yaml, then lets .env and the process environment
// override any key that is set there.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	for key, field := range fields() {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	// Keys read through os.Getenv by SDKs
	if config.GCSCredentialsFile != "" {
		os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", config.GCSCredentialsFile)
	}
}

func fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":                       &config.AppPort,
		"APP_URL":                        &config.AppURL,
		"DB_USER":                        &config.DBUser,
		"DB_NAME":                        &config.DBName,
		"DB_PASSWORD":                    &config.DBPassword,
		"DB_PORT":                        &config.DBPort,
		"DB_HOST":                        &config.DBHost,
		"DB_SSLMODE":                     &config.DBSSLMode,
		"DB_TIMEZONE":                    &config.DBTimeZone,
		"JWT_SECRET":                     &config.JWTSecret,
		"SMTP_HOST":                      &config.SMTPHost,
		"SMTP_PORT":                      &config.SMTPPort,
		"SMTP_SENDER_NAME":               &config.SMTPSenderName,
		"SMTP_AUTH_EMAIL":                &config.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":             &config.SMTPAuthPassword,
		"STORAGE_DRIVER":                 &config.StorageDriver,
		"AWS_S3_BUCKET":                  &config.AWSS3Bucket,
		"AWS_S3_REGION":                  &config.AWSS3Region,
		"AWS_ACCESS_KEY":                 &config.AWSAccessKey,
		"AWS_SECRET_KEY":                 &config.AWSSecretKey,
		"GCS_BUCKET":                     &config.GCSBucket,
		"GOOGLE_APPLICATION_CREDENTIALS": &config.GCSCredentialsFile,
		"GEMINI_API_KEY":                 &config.GeminiAPIKey,
		"GEMINI_MODEL":                   &config.GeminiModel,
		"GEMINI_VISION_MODEL":            &config.GeminiVisionModel,
		"REDIS_ADDR":                     &config.RedisAddr,
		"REDIS_PASSWORD":                 &config.RedisPassword,
		"REDIS_DB":                       &config.RedisDB,
		"RABBITMQ_URL":                   &config.RabbitMQURL,
	}
}

func GetConfig(key string) string {
	if field, ok := fields()[key]; ok {
		return *field
	}
	return ""
}

// SetConfig overrides a single key at runtime. Unknown keys are ignored.
func SetConfig(key, value string) {
	if field, ok := fields()[key]; ok {
		*field = value
	}
}
