// Package job provides background job processing using asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued through
// asynq.Client and consumed by workers running under asynq.Server.
// The catalog uses it for work that must not block a request, like
// sending the welcome email after a user is created.
package job

import (
	"github.com/deppfellow/catalog-service/internal/config"
	"github.com/deppfellow/catalog-service/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the asynq client (enqueue) and server (worker
// execution), plus the dependencies task handlers need.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs workers that pull tasks from Redis and execute handlers.
	server *asynq.Server

	// email sends provider-backed emails from task handlers.
	email *email.Client

	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis address in cfg.
//
// Queue weights distribute the worker pool by priority ratio: out of 10
// concurrent tasks roughly 6 critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers initializes dependencies required by task handlers.
// Must run before Start so handlers never see a nil email client.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.email = email.NewClient(cfg, logger)
}

// Start registers task handlers and starts the worker server.
// asynq's Start returns once workers are running; it does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the worker server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
