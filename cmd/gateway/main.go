package main

import (
	jobshandler "dandee/internal/jobs/handler"
	jobsrepository "dandee/internal/jobs/repository"
	jobsservice "dandee/internal/jobs/service"
	notificationshandler "dandee/internal/notifications/handler"
	notificationsrepository "dandee/internal/notifications/repository"
	notificationsservice "dandee/internal/notifications/service"
	paymentshandler "dandee/internal/payments/handler"
	paymentsrepository "dandee/internal/payments/repository"
	paymentsservice "dandee/internal/payments/service"
	profileshandler "dandee/internal/profiles/handler"
	profilesrepository "dandee/internal/profiles/repository"
	profilesservice "dandee/internal/profiles/service"
	"dandee/internal/push"
	reviewshandler "dandee/internal/reviews/handler"
	reviewsrepository "dandee/internal/reviews/repository"
	reviewsservice "dandee/internal/reviews/service"
	schedulinghandler "dandee/internal/scheduling/handler"
	schedulingrepository "dandee/internal/scheduling/repository"
	schedulingservice "dandee/internal/scheduling/service"
	"dandee/pkg/app"
	"dandee/pkg/client"
	"dandee/pkg/config"
	"dandee/pkg/events"
	"dandee/pkg/storage"
)

const ServiceName = "gateway"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetClients()

	store := storage.New(cfg.Log, storage.Config{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	dispatcher := newDispatcher(cfg)
	publisher := events.NewPublisher(cfg.Log, cfg.KafkaBrokers, cfg.KafkaEventTopic, ServiceName)

	stripeService := paymentsservice.NewStripeService(cfg)
	paymentService := paymentsservice.NewPaymentService(paymentsrepository.NewPaymentRepository(cfg), cfg)

	profileService := profilesservice.NewProfileService(
		profilesrepository.NewProfileRepository(cfg),
		profilesrepository.NewUserRepository(cfg),
		cfg,
	)
	photoService := profilesservice.NewPhotoService(store, cfg)

	jobService := jobsservice.NewJobService(jobsrepository.NewJobRepository(cfg), publisher, cfg)
	schedulingService := schedulingservice.NewSchedulingService(schedulingrepository.NewScheduledJobRepository(cfg), cfg)
	notificationService := notificationsservice.NewNotificationService(
		notificationsrepository.NewNotificationRepository(cfg),
		dispatcher,
		publisher,
		cfg,
	)
	reviewService := reviewsservice.NewReviewService(reviewsrepository.NewReviewRepository(cfg), cfg)

	cfg.Log.Info("Gateway services initialized",
		"database", cfg.MongoDatabaseName,
		"push_provider", cfg.PushProvider,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		paymentshandler.NewPaymentHandler(stripeService, paymentService, cfg.Log),
		profileshandler.NewProfileHandler(profileService, photoService, cfg.Log),
		jobshandler.NewJobHandler(jobService, cfg.Log),
		schedulinghandler.NewSchedulingHandler(schedulingService, cfg.Log),
		notificationshandler.NewNotificationHandler(notificationService, dispatcher, cfg.Log),
		reviewshandler.NewReviewHandler(reviewService, cfg.Log),
	)
	serverApp.OnShutdown(dispatcher.Shutdown)
	serverApp.OnShutdown(publisher.Close)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func newDispatcher(cfg *config.Config) push.Dispatcher {
	if cfg.PushProvider == config.PushProviderOneSignal {
		return push.NewOneSignal(
			cfg.Log,
			client.NewHttpClient(cfg.OneSignalAPIURL),
			cfg.OneSignalAppID,
			cfg.OneSignalRESTKey,
		)
	}
	return push.NewNative(cfg.Log, cfg)
}
