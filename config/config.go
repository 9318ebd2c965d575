package config

// AppConfig holds the application configuration, loaded once at startup and
// immutable afterwards.
type AppConfig struct {
	DBURL        string
	RedisAddress string
	TokenSecret  string
	ServerAddr   string
	CORSOrigins  []string
}

// GetTokenSecret returns the symmetric key used to sign session tokens.
func (c *AppConfig) GetTokenSecret() string {
	return c.TokenSecret
}
