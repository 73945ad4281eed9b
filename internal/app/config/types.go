package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App   App
		Relay Relay
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Address                  string
		Timezone                 string
		EndpointPrefix           string
		SiteDefinitionPath       string
		MaxRequests              int
		LeadMaxRequests          int
		ShutdownTimeoutInSeconds int
		CacheTTLInMinutes        int
	}

	// Relay configures forwarding of queued leads to the external
	// form-relay service (Web3Forms-compatible).
	Relay struct {
		URL                  string
		AccessKey            string
		LeadQueue            string
		MaxQueue             int
		ThrottleRetry        int
		HTTPTimeoutInSeconds int
		RequestsPerMinute    int
	}
)
