package config

import (
	"brokerage-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "America/Los_Angeles"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			SiteDefinitionPath:       utils.GetEnvString("APP_SITE_DEFINITION_PATH", "configs/site.json"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 30),
			LeadMaxRequests:          utils.GetEnvInt("APP_LEAD_MAX_REQUEST", 3),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			CacheTTLInMinutes:        utils.GetEnvInt("APP_CACHE_TTL_IN_MINUTES", 30),
		},
		Relay: Relay{
			URL:                  utils.GetEnvString("RELAY_URL", "https://api.web3forms.com/submit"),
			AccessKey:            utils.GetEnvString("RELAY_ACCESS_KEY", ""),
			LeadQueue:            utils.GetEnvString("RELAY_LEAD_QUEUE", "lead_relay_queue"),
			MaxQueue:             utils.GetEnvInt("RELAY_MAX_QUEUE", 10),
			ThrottleRetry:        utils.GetEnvInt("RELAY_THROTTLE_RETRY", 5),
			HTTPTimeoutInSeconds: utils.GetEnvInt("RELAY_HTTP_TIMEOUT_IN_SECONDS", 10),
			RequestsPerMinute:    utils.GetEnvInt("RELAY_REQUESTS_PER_MINUTE", 30),
		},
	}
}
