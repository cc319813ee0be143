package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultMongoDatabaseName = "dandee"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultS3Region = "us-east-1"

	DefaultPushProvider    = "native"
	DefaultOneSignalAPIURL = "https://onesignal.com/api/v1"
	DefaultAPNSTopic       = "com.dandee.homeops.app"

	DefaultKafkaEventTopic = "dandee.events"

	// Photo uploads arrive base64-encoded inside JSON bodies, so the request
	// cap sits well above the 10MiB decoded-photo limit.
	DefaultMaxRequestSize = 16 * 1024 * 1024

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultNotificationListLimit = 50
)

// PushProviderNative routes by device token and platform through APNs/FCM;
// PushProviderOneSignal routes by external user id through the OneSignal API.
const (
	PushProviderNative    = "native"
	PushProviderOneSignal = "onesignal"
)
