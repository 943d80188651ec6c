// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"devops-webapp/internal/config"
	"devops-webapp/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	defaultConfigPath = "config.toml"
	defaultEnvFile    = ".env"
	configPathEnv     = "WEBAPP_CONFIG_PATH"
)

var (
	// Global config object populated by file/env/flags
	cfg *config.Config

	cfgFile string
	envFile string
)

// binding ties a config key to its flag and environment variables.
// Environment variables are consulted in order.
type binding struct {
	key  string
	flag string
	envs []string
}

var bindings = []binding{
	{"server.host", "host", []string{"HOST"}},
	{"server.port", "port", []string{"PORT"}},
	{"server.public_dir", "public-dir", []string{"PUBLIC_DIR"}},
	{"server.disable_swagger", "disable-swagger", []string{"DISABLE_SWAGGER"}},
	{"server.shutdown_timeout", "shutdown-timeout", []string{"SHUTDOWN_TIMEOUT"}},
	{"app.environment", "env", []string{"APP_ENV", "NODE_ENV"}},
	{"logging.level", "log-level", []string{"LOG_LEVEL"}},
	{"metrics.enabled", "metrics", []string{"METRICS_ENABLED"}},
	{"metrics.port", "metrics-port", []string{"METRICS_PORT"}},
}

func registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	persistent := cmd.PersistentFlags()
	persistent.StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: "+configPathEnv+")")
	persistent.StringVar(&envFile, "env-file", defaultEnvFile, "Dotenv file loaded into the environment if present.")
	persistent.String("log-level", "", "Logging level (trace, debug, info, warn, error). (Env: LOG_LEVEL)")

	// Server-specific flags
	registerServerFlags(cmd.Flags())
}

func registerServerFlags(flags *pflag.FlagSet) {
	flags.String("host", "", "Interface to listen on. (Env: HOST)")
	flags.Int("port", 0, "Port for the HTTP server. (Env: PORT)")
	flags.String("public-dir", "", "Serve static assets from this directory instead of the embedded ones. (Env: PUBLIC_DIR)")
	flags.Bool("disable-swagger", false, "Do not mount the Swagger UI. (Env: DISABLE_SWAGGER=true)")
	flags.String("shutdown-timeout", "", "Grace period for in-flight requests on shutdown, e.g. '30s'. (Env: SHUTDOWN_TIMEOUT)")
	flags.String("env", "", "Environment name reported by /api/health. (Env: APP_ENV or NODE_ENV)")
	flags.Bool("metrics", false, "Expose Prometheus metrics on a separate port. (Env: METRICS_ENABLED=true)")
	flags.Int("metrics-port", 0, "Port for the metrics listener. (Env: METRICS_PORT)")
}

// initializeConfig loads and overrides configuration values.
// Precedence: flags > environment > dotenv file > config file > defaults.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Dotenv never overrides variables already present in the environment
	if err := gotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// 2. Environment variable for config path, unless the flag was given
	if envPath := os.Getenv(configPathEnv); envPath != "" && !flagChanged(cmd, "config_path") {
		cfgFile = envPath
	}

	loaded, err := config.LoadConfig(cfgFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
		// No config file, rely on env/flags/defaults
		loaded = &config.Config{}
	}

	// 3. Apply Overrides (Env Vars and CLI Flags)
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	if err := applyOverrides(loaded, v); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Defaults and validation
	loaded.ApplyDefaults()
	if err := loaded.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	cfg = loaded

	// 5. Initialize Logging
	logging.Init(cfg.Logging.Level)
	logging.Log.Debugf("configuration loaded (file: %s)", cfgFile)

	return nil
}

// newViper binds every known key to its environment variables and, when the
// command defines it, to its flag.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	for _, b := range bindings {
		args := append([]string{b.key}, b.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", b.key, err)
		}
		if f := cmd.Flag(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return nil, fmt.Errorf("binding --%s: %w", b.flag, err)
			}
		}
	}
	return v, nil
}

// applyOverrides copies every key set by a flag or the environment onto c.
func applyOverrides(c *config.Config, v *viper.Viper) error {
	var err error
	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	setInt := func(key string, dst *int) {
		if err != nil || !v.IsSet(key) {
			return
		}
		n, convErr := strconv.Atoi(v.GetString(key))
		if convErr != nil {
			err = fmt.Errorf("%s: %q is not a number", key, v.GetString(key))
			return
		}
		*dst = n
	}
	setBool := func(key string, dst *bool) {
		if err != nil || !v.IsSet(key) {
			return
		}
		b, convErr := strconv.ParseBool(v.GetString(key))
		if convErr != nil {
			err = fmt.Errorf("%s: %q is not a boolean", key, v.GetString(key))
			return
		}
		*dst = b
	}

	setString("server.host", &c.Server.Host)
	setInt("server.port", &c.Server.Port)
	setString("server.public_dir", &c.Server.PublicDir)
	setBool("server.disable_swagger", &c.Server.DisableSwagger)
	setString("server.shutdown_timeout", &c.Server.ShutdownTimeout)
	setString("app.environment", &c.App.Environment)
	setString("logging.level", &c.Logging.Level)
	setBool("metrics.enabled", &c.Metrics.Enabled)
	setInt("metrics.port", &c.Metrics.Port)

	return err
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
