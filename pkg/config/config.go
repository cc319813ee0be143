package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dandee/pkg/client"
	"dandee/pkg/logger"

	"github.com/joho/godotenv"
)

// Config holds everything the gateway reads from the environment. External
// collaborator credentials are optional: when absent the matching client
// handle stays nil and the affected routes answer 503 instead of the process
// refusing to boot.
type Config struct {
	Port     string
	LogLevel string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	StripeSecretKey string

	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string

	PushProvider       string
	OneSignalAppID     string
	OneSignalRESTKey   string
	OneSignalAPIURL    string
	APNSKeyFile        string
	APNSKeyID          string
	APNSTeamID         string
	APNSTopic          string
	APNSProduction     bool
	FCMCredentialsFile string

	KafkaBrokers    []string
	KafkaEventTopic string

	MaxRequestSize  int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	// Local development reads backend/.env; missing files are fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		MongoURI:          getEnvStr(EnvMongoURI, ""),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		StripeSecretKey: getEnvStr(EnvStripeSecretKey, ""),

		S3Bucket:     getEnvStr(EnvS3Bucket, ""),
		S3Region:     getEnvStr(EnvS3Region, DefaultS3Region),
		AWSAccessKey: getEnvStr(EnvAWSAccessKey, ""),
		AWSSecretKey: getEnvStr(EnvAWSSecretKey, ""),

		PushProvider:       getEnvStr(EnvPushProvider, DefaultPushProvider),
		OneSignalAppID:     getEnvStr(EnvOneSignalAppID, ""),
		OneSignalRESTKey:   getEnvStr(EnvOneSignalRESTKey, ""),
		OneSignalAPIURL:    getEnvStr(EnvOneSignalAPIURL, DefaultOneSignalAPIURL),
		APNSKeyFile:        getEnvStr(EnvAPNSKeyFile, ""),
		APNSKeyID:          getEnvStr(EnvAPNSKeyID, ""),
		APNSTeamID:         getEnvStr(EnvAPNSTeamID, ""),
		APNSTopic:          getEnvStr(EnvAPNSTopic, DefaultAPNSTopic),
		APNSProduction:     getEnvBool(EnvAPNSProduction, true),
		FCMCredentialsFile: getEnvStr(EnvFCMCredentialsFile, ""),

		KafkaBrokers:    getEnvList(EnvKafkaBrokers),
		KafkaEventTopic: getEnvStr(EnvKafkaEventTopic, DefaultKafkaEventTopic),

		MaxRequestSize:  getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Client: client.NewClient(),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// SetClients connects the external-service handles that are configured.
// Each missing credential logs a warning; the handle stays nil.
func (cfg *Config) SetClients() {
	if cfg.MongoURI == "" {
		cfg.Log.Warn("Mongo credentials not configured, persistence endpoints disabled",
			"env", EnvMongoURI,
		)
	} else {
		cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
	}

	if cfg.StripeSecretKey == "" || strings.Contains(cfg.StripeSecretKey, "placeholder") {
		cfg.Log.Warn("Stripe secret key not configured, payment endpoints disabled",
			"env", EnvStripeSecretKey,
		)
	} else {
		cfg.Client.SetStripe(cfg.Log, cfg.StripeSecretKey)
	}
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI != "" && !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	if cfg.PushProvider != PushProviderNative && cfg.PushProvider != PushProviderOneSignal {
		errs = append(errs, fmt.Sprintf("PushProvider must be %q or %q, got: %s", PushProviderNative, PushProviderOneSignal, cfg.PushProvider))
	}

	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		msg := "Configuration validation failed:\n"
		for i, e := range errs {
			msg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", msg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"stripe_key_set", cfg.StripeSecretKey != "",
		"s3_bucket", cfg.S3Bucket,
		"s3_region", cfg.S3Region,
		"push_provider", cfg.PushProvider,
		"onesignal_configured", cfg.OneSignalRESTKey != "",
		"apns_configured", cfg.APNSKeyFile != "",
		"fcm_configured", cfg.FCMCredentialsFile != "",
		"kafka_brokers", len(cfg.KafkaBrokers),
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeListLimit clamps a notification list limit to the default window.
func NormalizeListLimit(limit int) int {
	if limit <= 0 || limit > DefaultNotificationListLimit {
		return DefaultNotificationListLimit
	}
	return limit
}
