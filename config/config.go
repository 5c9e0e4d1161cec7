package config

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"12223"`
	// APIKey guards the /api group when set; empty disables auth.
	APIKey            string `env:"API_KEY"`
	DNSTimeoutSeconds int    `env:"DNS_TIMEOUT_SECONDS" envDefault:"5"`
}
