package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/scout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.CatalogFile, convey.ShouldBeEmpty)
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 64)
				convey.So(cfg.MCPEnabled, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SCOUT_ADDR", ":8080")
			_ = os.Setenv("SCOUT_MIN_AVAILABLE_METRICS", "4")
			_ = os.Setenv("SCOUT_MAX_UPLOAD_BYTES", "1048576")
			_ = os.Setenv("SCOUT_CORS_ALLOWED_ORIGINS", "https://scouting.example, https://app.example")
			_ = os.Setenv("SCOUT_MCP_ENABLED", "false")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MinAvailableMetrics, convey.ShouldEqual, 4)
				convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(1048576))
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://scouting.example", "https://app.example"})
				convey.So(cfg.MCPEnabled, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with a YAML file and env overrides", func() {
			tmpFile := createTempConfigFile(`
# league specific deployment
addr: ":9090"
catalog_file: /etc/scout/liga.yaml
default_top_n: 20
session_ttl_minutes: 15
session_sweep_schedule: "@every 30s"
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("SCOUT_CONFIG", tmpFile)
			_ = os.Setenv("SCOUT_DEFAULT_TOP_N", "25")

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars win over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.CatalogFile, convey.ShouldEqual, "/etc/scout/liga.yaml")
				convey.So(cfg.DefaultTopN, convey.ShouldEqual, 25)
				convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 15)
				convey.So(cfg.SessionSweepSchedule, convey.ShouldEqual, "@every 30s")
				convey.So(cfg.MaxTopN, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("SCOUT_CONFIG", "/non/existent/scout.yaml")

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with invalid YAML", func() {
			tmpFile := createTempConfigFile("addr: [unclosed\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("SCOUT_CONFIG", tmpFile)

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When loading config with an invalid number", func() {
			_ = os.Setenv("SCOUT_MAX_TOP_N", "many")

			_, err := config.Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When the default top-n exceeds the cap", func() {
			_ = os.Setenv("SCOUT_DEFAULT_TOP_N", "50")
			_ = os.Setenv("SCOUT_MAX_TOP_N", "20")

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When addr is emptied by the file", func() {
			tmpFile := createTempConfigFile("addr: \"\"\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("SCOUT_CONFIG", tmpFile)

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"SCOUT_CONFIG", "SCOUT_ADDR", "SCOUT_LOG_LEVEL", "SCOUT_CATALOG_FILE",
		"SCOUT_MIN_AVAILABLE_METRICS", "SCOUT_DEFAULT_TOP_N", "SCOUT_MAX_TOP_N",
		"SCOUT_MAX_UPLOAD_BYTES", "SCOUT_MAX_ROWS", "SCOUT_SESSION_TTL_MINUTES",
		"SCOUT_SESSION_CAPACITY", "SCOUT_SESSION_SWEEP_SCHEDULE",
		"SCOUT_CORS_ALLOWED_ORIGINS", "SCOUT_MCP_ENABLED",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "scout-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
