package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultCheckpoint       = 500
	defaultBlockSize        = 100
	defaultMaxInteractions  = 150
	defaultStressCheckpoint = 200
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firestore holds the document store credentials.
	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Seed controls the relational generator runs.
	Seed *SeedConfig `json:"seed" yaml:"seed"`

	// Projection controls the document store projection runs.
	Projection *ProjectionConfig `json:"projection" yaml:"projection"`

	// Stress controls the load measurement runs.
	Stress *StressConfig `json:"stress" yaml:"stress"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirestoreConfig defines the Firebase project used as the document store.
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SeedConfig defines row counts and the commit checkpoint for seeding runs.
type SeedConfig struct {
	// Checkpoint is the number of inserts between commits. Values <= 0
	// run the whole loop inside a single transaction.
	Checkpoint int `json:"checkpoint" yaml:"checkpoint"`

	Counts SeedCounts `json:"counts" yaml:"counts"`
}

// SeedCounts holds per-entity row counts. Catalog tables (plans, gifts)
// have fixed contents and carry no count.
type SeedCounts struct {
	Users            int `json:"users" yaml:"users"`
	Advertisers      int `json:"advertisers" yaml:"advertisers"`
	Campaigns        int `json:"campaigns" yaml:"campaigns"`
	Videos           int `json:"videos" yaml:"videos"`
	Subscriptions    int `json:"subscriptions" yaml:"subscriptions"`
	Transactions     int `json:"transactions" yaml:"transactions"`
	GiftTransactions int `json:"giftTransactions" yaml:"giftTransactions"`
	ContentReports   int `json:"contentReports" yaml:"contentReports"`
	Follows          int `json:"follows" yaml:"follows"`
}

// ProjectionConfig defines paging and volume bounds for projection runs.
type ProjectionConfig struct {
	// BlockSize is the number of videos fetched per relational page.
	BlockSize int `json:"blockSize" yaml:"blockSize"`

	// MaxInteractions caps the random per-video count of comments,
	// reactions and views (each drawn from [0, MaxInteractions]).
	MaxInteractions int `json:"maxInteractions" yaml:"maxInteractions"`

	// FeedCache enables per-user feed cache population. Off by default
	// because it costs O(users x sample).
	FeedCache bool `json:"feedCache" yaml:"feedCache"`
}

// StressConfig defines the ascending load sequences and batching caps.
type StressConfig struct {
	InsertLoads []int `json:"insertLoads" yaml:"insertLoads"`
	ReadLoads   []int `json:"readLoads" yaml:"readLoads"`

	// RelationalCheckpoint is the commit sub-interval for relational
	// insert workloads.
	RelationalCheckpoint int `json:"relationalCheckpoint" yaml:"relationalCheckpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIRESTORE_PROJECTID -> firestore.projectId (not firestore.projectid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == nil {
		cfg.Seed = &SeedConfig{}
	}
	if cfg.Seed.Checkpoint == 0 {
		cfg.Seed.Checkpoint = defaultCheckpoint
	}

	if cfg.Projection == nil {
		cfg.Projection = &ProjectionConfig{}
	}
	if cfg.Projection.BlockSize <= 0 {
		cfg.Projection.BlockSize = defaultBlockSize
	}
	if cfg.Projection.MaxInteractions <= 0 {
		cfg.Projection.MaxInteractions = defaultMaxInteractions
	}

	if cfg.Stress == nil {
		cfg.Stress = &StressConfig{}
	}
	if cfg.Stress.RelationalCheckpoint <= 0 {
		cfg.Stress.RelationalCheckpoint = defaultStressCheckpoint
	}
	if len(cfg.Stress.InsertLoads) == 0 {
		cfg.Stress.InsertLoads = []int{1000, 2000, 5000}
	}
	if len(cfg.Stress.ReadLoads) == 0 {
		cfg.Stress.ReadLoads = []int{1000, 5000, 10000, 20000, 40000, 60000, 80000, 100000}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
