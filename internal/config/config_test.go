package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// chdirTemp runs the test in an empty working directory so no stray
// config.yaml or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  jwt_issuer: "idp.example.com"

log:
  level: "debug"
  format: "text"

graphql:
  playground_enabled: true
  complexity_limit: 200

study:
  learn_new_cap: 15
  test_cap: 40

game:
  combo_window: "20m"
  multipliers: "1, 1.5, 2"
  hard_points: 50
  timezone: "Europe/Berlin"

jobs:
  combo_sweep_interval: "30s"
`

func TestLoad_ValidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Auth
	if cfg.Auth.JWTIssuer != "idp.example.com" {
		t.Errorf("auth.jwt_issuer = %q", cfg.Auth.JWTIssuer)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}

	// GraphQL
	if !cfg.GraphQL.PlaygroundEnabled {
		t.Error("graphql.playground_enabled should be true")
	}
	if cfg.GraphQL.IntrospectionEnabled {
		t.Error("graphql.introspection_enabled should default to false")
	}
	if cfg.GraphQL.ComplexityLimit != 200 {
		t.Errorf("graphql.complexity_limit = %d, want 200", cfg.GraphQL.ComplexityLimit)
	}

	// Study: explicit values and defaults side by side.
	if cfg.Study.LearnNewCap != 15 || cfg.Study.TestCap != 40 {
		t.Errorf("study caps = %+v", cfg.Study)
	}
	if cfg.Study.LearnDueCap != 10 {
		t.Errorf("study.learn_due_cap = %d, want default 10", cfg.Study.LearnDueCap)
	}

	// Game
	if cfg.Game.ComboWindow != 20*time.Minute {
		t.Errorf("game.combo_window = %v, want 20m", cfg.Game.ComboWindow)
	}
	if len(cfg.Game.Multipliers) != 3 || cfg.Game.Multipliers[1] != 1.5 {
		t.Errorf("game.multipliers = %v", cfg.Game.Multipliers)
	}
	if cfg.Game.HardPoints != 50 || cfg.Game.MediumPoints != 20 {
		t.Errorf("game points = %d/%d", cfg.Game.MediumPoints, cfg.Game.HardPoints)
	}
	if cfg.Game.Location == nil || cfg.Game.Location.String() != "Europe/Berlin" {
		t.Errorf("game.location = %v", cfg.Game.Location)
	}
	if len(cfg.Game.Milestones) != 6 {
		t.Errorf("game.milestones = %v, want defaults", cfg.Game.Milestones)
	}

	// Jobs
	if !cfg.Jobs.ComboSweepEnabled || cfg.Jobs.ComboSweepInterval != 30*time.Second {
		t.Errorf("jobs = %+v", cfg.Jobs)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("GAME_COMBO_WINDOW", "45m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Game.ComboWindow != 45*time.Minute {
		t.Errorf("game.combo_window = %v, want 45m (ENV override)", cfg.Game.ComboWindow)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV_FILE", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Game.ComboWindow != 30*time.Minute {
		t.Errorf("game.combo_window = %v, want 30m (default)", cfg.Game.ComboWindow)
	}
	if cfg.Game.Location != time.UTC {
		t.Errorf("game.location = %v, want UTC", cfg.Game.Location)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV_FILE", "")
	// Registered so t.Setenv restores them after godotenv writes them.
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "7070")
	os.Unsetenv("DATABASE_DSN")
	os.Unsetenv("AUTH_JWT_SECRET")

	dir := chdirTemp(t)
	writeFile(t, dir, ".env", "DATABASE_DSN=postgres://u:p@localhost/db\n"+
		"AUTH_JWT_SECRET=dotenv-secret-that-is-long-enough-123\n"+
		"SERVER_PORT=9999\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost/db" {
		t.Errorf("database.dsn = %q, want value from .env", cfg.Database.DSN)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070 (process env wins over .env)", cfg.Server.Port)
	}
}

func TestLoad_ExplicitEnvFileNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV_FILE", "/nonexistent/.env")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit env file")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Game.Multipliers) != 6 {
		t.Errorf("multipliers not parsed: %v", cfg.Game.Multipliers)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"short jwt secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"empty jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"negative complexity limit", func(c *Config) { c.GraphQL.ComplexityLimit = -1 }},
		{"negative study cap", func(c *Config) { c.Study.TestCap = -1 }},
		{"practice threshold above 100", func(c *Config) { c.Study.PracticeMasteryBelow = 101 }},
		{"test threshold negative", func(c *Config) { c.Study.TestMasteryAtLeast = -1 }},
		{"zero combo window", func(c *Config) { c.Game.ComboWindow = 0 }},
		{"empty multipliers", func(c *Config) { c.Game.MultipliersRaw = " , " }},
		{"decreasing multipliers", func(c *Config) { c.Game.MultipliersRaw = "1,2,1.5" }},
		{"multiplier below one", func(c *Config) { c.Game.MultipliersRaw = "0.5,1" }},
		{"zero base points", func(c *Config) { c.Game.EasyPoints = 0 }},
		{"zero recent cap", func(c *Config) { c.Game.RecentEventsCap = 0 }},
		{"zero level step", func(c *Config) { c.Game.LevelStep = 0 }},
		{"bad milestone", func(c *Config) { c.Game.StreakMilestones = "3,x" }},
		{"unknown timezone", func(c *Config) { c.Game.Timezone = "Mars/Olympus" }},
		{"zero sweep interval", func(c *Config) { c.Jobs.ComboSweepInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_SweepDisabledIgnoresInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Jobs.ComboSweepEnabled = false
	cfg.Jobs.ComboSweepInterval = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseMultipliers(t *testing.T) {
	got, err := ParseMultipliers(" 1 , 1.2,1.2, 3 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 1.2, 1.2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseMultipliers("1,abc"); err == nil {
		t.Error("expected error for non-numeric multiplier")
	}
}

func TestParseMilestones(t *testing.T) {
	got, err := ParseMilestones("30, 3,7,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 7, 30}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	empty, err := ParseMilestones("")
	if err != nil || empty != nil {
		t.Errorf("empty input: got %v, %v", empty, err)
	}

	if _, err := ParseMilestones("0"); err == nil {
		t.Error("expected error for zero milestone")
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Auth: AuthConfig{
			JWTSecret: "this-is-a-very-long-jwt-secret-for-testing-32+",
			JWTIssuer: "studyquest",
		},
		Study: StudyConfig{
			ReviewPracticeCap:    10,
			LearnNewCap:          20,
			LearnDueCap:          10,
			TestCap:              30,
			PracticeMasteryBelow: 70,
			TestMasteryAtLeast:   50,
		},
		Game: GameConfig{
			ComboWindow:      30 * time.Minute,
			MultipliersRaw:   "1,1.2,1.5,2,2.5,3",
			EasyPoints:       10,
			MediumPoints:     20,
			HardPoints:       30,
			RecentEventsCap:  10,
			LevelStep:        100,
			StreakMilestones: "3,7,14,30,60,100",
			MasteryThreshold: 80,
			Timezone:         "UTC",
		},
		Jobs: JobsConfig{
			ComboSweepEnabled:  true,
			ComboSweepInterval: time.Minute,
		},
	}
}
