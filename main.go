package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-tracker/modules/api"
	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/cache"
	"github.com/example/task-tracker/modules/feed"
	"github.com/example/task-tracker/modules/push"
	"github.com/example/task-tracker/modules/pushtoken"
	"github.com/example/task-tracker/modules/task"
	"github.com/example/task-tracker/modules/template"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("Starting task-tracker...")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	cacheModule := cache.NewModule(os.Getenv("REDIS_ADDR"))
	pushModule := push.NewModule()
	taskModule := task.NewModule(pushModule, cacheModule)

	// Registration order: independent modules first, then dependents.
	modules := []mono.Module{
		cacheModule,
		pushtoken.NewModule(),
		pushModule,
		auth.NewModule(),
		template.NewModule(),
		taskModule,
		feed.NewModule(),
		api.NewModule(),
	}
	for _, m := range modules {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register %s module: %v", m.Name(), err)
		}
	}

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/v1/auth/register        - Register a new user")
	log.Println("  POST   /api/v1/auth/login           - Login and get tokens")
	log.Println("  POST   /api/v1/auth/refresh         - Refresh access token")
	log.Println("  GET    /health                      - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/v1/profile              - Current user profile")
	log.Println("  POST   /api/v1/tasks                - Create a task")
	log.Println("  GET    /api/v1/tasks                - List tasks (offset, limit, sort, status, title)")
	log.Println("  GET    /api/v1/tasks/:id            - Get a task with stages")
	log.Println("  PUT    /api/v1/tasks/:id            - Update task fields")
	log.Println("  PUT    /api/v1/tasks/:id/status     - Change task status")
	log.Println("  DELETE /api/v1/tasks/:id            - Delete a task")
	log.Println("  GET    /api/v1/stages/:id/history   - Stage audit log")
	log.Println("  POST   /api/v1/templates            - Create a template")
	log.Println("  GET    /api/v1/templates            - List templates")
	log.Println("  GET    /api/v1/templates/:id        - Get a template")
	log.Println("  PUT    /api/v1/templates/:id        - Update a template")
	log.Println("  DELETE /api/v1/templates/:id        - Delete a template")
	log.Println("  POST   /api/v1/push-tokens          - Register a device push token")
	log.Println("")
	log.Println("WebSocket status feed: ws://localhost:3001/ws/tasks")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
