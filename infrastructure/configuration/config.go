package configuration

import (
	"fmt"
	"os"
	"strconv"

	"videotube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Database    Database    `json:"database"`
	App         App         `json:"app"`
	RedisClient RedisClient `json:"redisClient"`
	Cloudinary  Cloudinary  `json:"cloudinary"`
	Upload      Upload      `json:"upload"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port                  int    `json:"port"`
	SecretKey             string `json:"secretKey"`
	RefreshSecretKey      string `json:"refreshSecretKey"`
	AccessTokenTTLMinutes int    `json:"accessTokenTTLMinutes"`
	RefreshTokenTTLDays   int    `json:"refreshTokenTTLDays"`
	TLSEnabled            bool   `json:"tlsEnabled"`
	TLSCertFile           string `json:"tlsCertFile"`
	TLSKeyFile            string `json:"tlsKeyFile"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// Cloudinary holds the blob store credentials.
type Cloudinary struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

// Upload controls where multipart files are staged before the blob upload.
type Upload struct {
	TempDir string `json:"tempDir"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initCloudinary(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	// Local defaults keep a bare `go run .` working against docker-compose.
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "videotube"
	}
}

func initApp(C *Config) {
	// Secrets from environment override the config file when provided.
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		C.App.SecretKey = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		C.App.RefreshSecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if C.App.AccessTokenTTLMinutes == 0 {
		C.App.AccessTokenTTLMinutes = 15
	}
	if C.App.RefreshTokenTTLDays == 0 {
		C.App.RefreshTokenTTLDays = 10
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if C.Upload.TempDir == "" {
		C.Upload.TempDir = os.TempDir()
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; authentication will fail. Provide ACCESS_TOKEN_SECRET via environment.")
	}
	if C.App.RefreshSecretKey == "" {
		logger.GetLogger().Warn("App.RefreshSecretKey not set; token refresh will fail. Provide REFRESH_TOKEN_SECRET via environment.")
	}
}

func initCloudinary(C *Config) {
	if C.Cloudinary.CloudName == "" {
		C.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	}
	if C.Cloudinary.APIKey == "" {
		C.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	}
	if C.Cloudinary.APISecret == "" {
		C.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	}
}
