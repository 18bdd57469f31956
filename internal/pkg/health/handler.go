package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/database"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Checker reports whether a backing dependency is reachable.
type Checker struct {
	Name  string
	Check func(ctx context.Context) error
}

// PostgresChecker verifies database connectivity.
func PostgresChecker(client *database.PostgresClient) Checker {
	return Checker{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			return client.GetDB().PingContext(ctx)
		},
	}
}

// RedisChecker verifies cache connectivity.
func RedisChecker(client *database.RedisClient) Checker {
	return Checker{
		Name: "redis",
		Check: func(ctx context.Context) error {
			return client.Client.Ping(ctx).Err()
		},
	}
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewReadinessHandler creates a handler that runs all dependency checks.
// Any failing check turns the response into a 503 with per-check detail.
func NewReadinessHandler(checkers ...Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				checks[checker.Name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				checks[checker.Name] = "ok"
			}
		}

		return c.JSON(status, map[string]interface{}{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	// Basic ping endpoint
	e.GET("/ping", NewPingHandler(serviceName))

	// Kubernetes standard health endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Readiness includes backing dependencies
	e.GET("/ready", NewReadinessHandler(checkers...))
}
