package model

// EnvConfig holds environment settings loaded from the `config` env var.
type EnvConfig struct {
	Port          string `json:"port"`
	MongoURI      string `json:"mongoUri"`
	MongoDatabase string `json:"mongoDatabase"`
	Environment   string `json:"environment"`
	JwtSecret     string `json:"jwtSecret"`
	AdminUser     string `json:"adminUser"`
	AdminPassword string `json:"adminPassword"` // bcrypt hash
	RateLimiter   bool   `json:"rateLimiter"`
	FrontendUrl   string `json:"frontendUrl"`
}
