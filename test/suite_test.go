package test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/2beens/fitplan/internal"
	"github.com/2beens/fitplan/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	serverPort        = 19000
	metricsPort       = 19001
	serverHost        = "127.0.0.1"
	bmiAllowedPerMin  = 5
	testCorsOrigin    = "test"
	testVersionString = "test-version-info"
)

var (
	serverEndpoint  = fmt.Sprintf("http://%s", net.JoinHostPort(serverHost, strconv.Itoa(serverPort)))
	metricsEndpoint = fmt.Sprintf("http://%s/metrics", net.JoinHostPort(serverHost, strconv.Itoa(metricsPort)))
)

// IntegrationTestSuite runs the whole service against a real redis started in docker.
type IntegrationTestSuite struct {
	suite.Suite

	dockerPool *dockertest.Pool
	server     *internal.Server
	httpClient *http.Client
	teardown   []func()
}

func TestIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration tests are skipped in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	fmt.Println("setting up test suite...")

	s.teardown = make([]func(), 0)
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("could not create new dockertest pool: %s", err)
	}
	if err = s.dockerPool.Client.Ping(); err != nil {
		s.T().Skipf("could not ping docker: %s", err)
	}
	fmt.Println("dockertest pool ping successful")

	redisPort, err := s.redisSetup(ctx)
	if err != nil {
		s.cleanup()
		s.T().Fatalf("failed to setup redis: %s", err)
	}
	fmt.Println("redis setup successful")

	cfg := getTestConfig(redisPort)
	s.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             testVersionString,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
			OtelServiceName:         "fitplan-integration",
		},
	)
	if err != nil {
		s.cleanup()
		s.T().Fatalf("new server: %s", err)
	}

	s.server.Serve(cfg.Host, cfg.Port)
	if err := s.dockerPool.Retry(func() error {
		resp, err := s.httpClient.Get(serverEndpoint + "/")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		s.cleanup()
		s.T().Fatalf("server did not come up: %s", err)
	}
	fmt.Println("server started")
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *IntegrationTestSuite) cleanup() {
	fmt.Println(" --> cleaning up test suite...")
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	fmt.Println(" --> test suite server shut down")
	for _, teardown := range s.teardown {
		teardown()
	}
	fmt.Println(" --> test suite cleanup done")
}

func getTestConfig(redisPort string) *config.Config {
	return &config.Config{
		Environment:           "development",
		Host:                  serverHost,
		Port:                  serverPort,
		LogLevel:              "debug",
		LogToStdout:           true,
		PrometheusMetricsHost: serverHost,
		PrometheusMetricsPort: strconv.Itoa(metricsPort),
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		BmiRateLimitPerMin:    bmiAllowedPerMin,
		PlanCacheSizeMB:       8,
		PlanCacheTTLSeconds:   60,
		CorsAllowedOrigins:    []string{testCorsOrigin},
	}
}

func (s *IntegrationTestSuite) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")

	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", redisPort),
	})
	defer rdb.Close()

	if err := s.dockerPool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("connect to redis: %w", err)
	}

	return redisPort, nil
}

func (s *IntegrationTestSuite) get(ctx context.Context, path string, headers map[string]string) *http.Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverEndpoint+path, nil)
	s.Require().NoError(err)
	req.Header.Set("Origin", testCorsOrigin)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	return resp
}
