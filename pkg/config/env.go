package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvStripeSecretKey = "STRIPE_SECRET_KEY"

	EnvS3Bucket     = "AWS_S3_BUCKET"
	EnvS3Region     = "AWS_REGION"
	EnvAWSAccessKey = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretKey = "AWS_SECRET_ACCESS_KEY"

	EnvPushProvider       = "PUSH_PROVIDER"
	EnvOneSignalAppID     = "ONESIGNAL_APP_ID"
	EnvOneSignalRESTKey   = "ONESIGNAL_REST_API_KEY"
	EnvOneSignalAPIURL    = "ONESIGNAL_API_URL"
	EnvAPNSKeyFile        = "APNS_KEY_FILE"
	EnvAPNSKeyID          = "APNS_KEY_ID"
	EnvAPNSTeamID         = "APNS_TEAM_ID"
	EnvAPNSTopic          = "APNS_TOPIC"
	EnvAPNSProduction     = "APNS_PRODUCTION"
	EnvFCMCredentialsFile = "FCM_CREDENTIALS_FILE"

	EnvKafkaBrokers    = "KAFKA_BROKERS"
	EnvKafkaEventTopic = "KAFKA_EVENT_TOPIC"

	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
