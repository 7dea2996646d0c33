package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	GraphQL  GraphQLConfig  `yaml:"graphql"`
	Study    StudyConfig    `yaml:"study"`
	Game     GameConfig     `yaml:"game"`
	Jobs     JobsConfig     `yaml:"jobs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"600"`
}

// GraphQLConfig holds GraphQL endpoint settings.
type GraphQLConfig struct {
	PlaygroundEnabled    bool `yaml:"playground_enabled"    env:"GRAPHQL_PLAYGROUND_ENABLED"    env-default:"false"`
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	ComplexityLimit      int  `yaml:"complexity_limit"      env:"GRAPHQL_COMPLEXITY_LIMIT"      env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access token verification settings. Tokens are issued by
// the identity provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"studyquest"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds study queue composition parameters.
type StudyConfig struct {
	ReviewPracticeCap    int `yaml:"review_practice_cap"    env:"STUDY_REVIEW_PRACTICE_CAP"    env-default:"10"`
	LearnNewCap          int `yaml:"learn_new_cap"          env:"STUDY_LEARN_NEW_CAP"          env-default:"20"`
	LearnDueCap          int `yaml:"learn_due_cap"          env:"STUDY_LEARN_DUE_CAP"          env-default:"10"`
	TestCap              int `yaml:"test_cap"               env:"STUDY_TEST_CAP"               env-default:"30"`
	PracticeMasteryBelow int `yaml:"practice_mastery_below" env:"STUDY_PRACTICE_MASTERY_BELOW" env-default:"70"`
	TestMasteryAtLeast   int `yaml:"test_mastery_at_least"  env:"STUDY_TEST_MASTERY_AT_LEAST"  env-default:"50"`
}

// GameConfig holds gamification scoring parameters.
type GameConfig struct {
	ComboWindow       time.Duration `yaml:"combo_window"        env:"GAME_COMBO_WINDOW"        env-default:"30m"`
	MultipliersRaw    string        `yaml:"multipliers"         env:"GAME_MULTIPLIERS"         env-default:"1,1.2,1.5,2,2.5,3"`
	EasyPoints        int           `yaml:"easy_points"         env:"GAME_EASY_POINTS"         env-default:"10"`
	MediumPoints      int           `yaml:"medium_points"       env:"GAME_MEDIUM_POINTS"       env-default:"20"`
	HardPoints        int           `yaml:"hard_points"         env:"GAME_HARD_POINTS"         env-default:"30"`
	RecentEventsCap   int           `yaml:"recent_events_cap"   env:"GAME_RECENT_EVENTS_CAP"   env-default:"10"`
	LevelStep         int           `yaml:"level_step"          env:"GAME_LEVEL_STEP"          env-default:"100"`
	StreakMilestones  string        `yaml:"streak_milestones"   env:"GAME_STREAK_MILESTONES"   env-default:"3,7,14,30,60,100"`
	MasteryThreshold  int           `yaml:"mastery_threshold"   env:"GAME_MASTERY_THRESHOLD"   env-default:"80"`
	Timezone          string        `yaml:"timezone"            env:"GAME_TIMEZONE"            env-default:"UTC"`
	ExpiryTimeout     time.Duration `yaml:"expiry_timeout"      env:"GAME_EXPIRY_TIMEOUT"      env-default:"5s"`

	// Multipliers is parsed from MultipliersRaw during validation.
	Multipliers []float64 `yaml:"-" env:"-"`
	// Milestones is parsed from StreakMilestones during validation.
	Milestones []int `yaml:"-" env:"-"`
	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// JobsConfig holds background job settings.
type JobsConfig struct {
	ComboSweepEnabled  bool          `yaml:"combo_sweep_enabled"  env:"JOBS_COMBO_SWEEP_ENABLED"  env-default:"true"`
	ComboSweepInterval time.Duration `yaml:"combo_sweep_interval" env:"JOBS_COMBO_SWEEP_INTERVAL" env-default:"1m"`
}
