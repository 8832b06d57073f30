package settings

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/services"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/templates"
)

const (
	EnvPrefix = "MATRIX_NOTIFICATIONS"

	DefaultStartDescription   = "Build started."
	DefaultEndDescription     = "Build done."
	DefaultContext            = "buildbot/{{.prop.buildername}}"
	DefaultContextPullRequest = "buildbot/pull_request/{{.prop.buildername}}"
)

// Config is the reporter configuration. It is never mutated after NewConfig returns.
type Config struct {
	HomeserverURL      string `json:"homeserverURL" split_words:"true"`
	RoomID             string `json:"roomId" split_words:"true"`
	AccessToken        string `json:"accessToken" split_words:"true"`
	StartDescription   string `json:"startDescription" split_words:"true"`
	EndDescription     string `json:"endDescription" split_words:"true"`
	Context            string `json:"context" split_words:"true"`
	ContextPullRequest string `json:"contextPullRequest" split_words:"true"`
	Verbose            bool   `json:"verbose" split_words:"true"`
	WarningAsSuccess   bool   `json:"warningAsSuccess" split_words:"true"`
	OnlyEndState       bool   `json:"onlyEndState" split_words:"true"`
	// Filter is an optional expression; events it evaluates to false for are not reported.
	Filter             string `json:"filter,omitempty" split_words:"true"`
	InsecureSkipVerify bool   `json:"insecureSkipVerify,omitempty" split_words:"true"`
}

func defaultConfig() Config {
	return Config{
		StartDescription:   DefaultStartDescription,
		EndDescription:     DefaultEndDescription,
		Context:            DefaultContext,
		ContextPullRequest: DefaultContextPullRequest,
	}
}

// NewConfig parses the configuration, applies environment overrides and resolves secret references.
func NewConfig(data []byte, secrets map[string]string) (*Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %v", err)
	}
	cfg.AccessToken = replaceStringSecret(cfg.AccessToken, secrets)
	cfg.HomeserverURL = strings.TrimRight(cfg.HomeserverURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	var missing []string
	if c.HomeserverURL == "" {
		missing = append(missing, "homeserverURL")
	}
	if c.RoomID == "" {
		missing = append(missing, "roomId")
	}
	if c.AccessToken == "" {
		missing = append(missing, "accessToken")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	if _, err := templates.NewService(c.Templates()); err != nil {
		return err
	}
	return nil
}

func (c Config) Templates() map[string]string {
	return map[string]string{
		templates.StartDescriptionTemplate:   c.StartDescription,
		templates.EndDescriptionTemplate:     c.EndDescription,
		templates.ContextTemplate:            c.Context,
		templates.ContextPullRequestTemplate: c.ContextPullRequest,
	}
}

func (c Config) MatrixOptions() services.MatrixOptions {
	return services.MatrixOptions{
		HomeserverURL:      c.HomeserverURL,
		AccessToken:        c.AccessToken,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

// replaceStringSecret checks if given string is a secret key reference ( starts with $ ) and returns
// corresponding value from the secrets or the process environment
func replaceStringSecret(val string, secretValues map[string]string) string {
	if val == "" || !strings.HasPrefix(val, "$") {
		return val
	}
	secretKey := val[1:]
	if secretVal, ok := secretValues[secretKey]; ok {
		return secretVal
	}
	if envVal, ok := os.LookupEnv(secretKey); ok {
		return envVal
	}
	log.Warnf("config referenced '%s', but key does not exist in secret", val)
	return val
}

func ParseSecrets(data []byte) (map[string]string, error) {
	secrets := map[string]string{}
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secrets: %v", err)
	}
	return secrets, nil
}

// Load reads the configuration and secrets files. Empty paths are skipped so the
// configuration may come from the environment alone.
func Load(configPath string, secretsPath string) (*Config, error) {
	var data []byte
	if configPath != "" {
		var err error
		if data, err = ioutil.ReadFile(configPath); err != nil {
			return nil, err
		}
	}
	secrets := map[string]string{}
	if secretsPath != "" {
		secretsData, err := ioutil.ReadFile(secretsPath)
		if err != nil {
			return nil, err
		}
		if secrets, err = ParseSecrets(secretsData); err != nil {
			return nil, err
		}
	}
	return NewConfig(data, secrets)
}

// LoadEnvFile loads variables from a dotenv file unless they are already set.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("env file %s does not exist", path)
			return nil
		}
		return err
	}
	return nil
}
