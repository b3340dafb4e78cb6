package cmd

// Config carries all environment-provided settings for the service:
// the HTTP listener, the Postgres record store, the Neo4j topology store
// and the Redis route cache.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string
	RedisURL      string
}
