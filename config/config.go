package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultConfigName         = "config"

	// ConfigPathEnv points the loader at an explicit config file.
	ConfigPathEnv = "CONFIG_PATH"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is only required when deadLetter.driver is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	DeadLetter *DeadLetterConfig `json:"deadLetter" yaml:"deadLetter"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for identity and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Docstore *DocstoreConfig `json:"docstore" yaml:"docstore"`

	Blob *BlobConfig `json:"blob" yaml:"blob"`

	WriteBehind *WriteBehindConfig `json:"writeBehind" yaml:"writeBehind"`

	Cart *CartConfig `json:"cart" yaml:"cart"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Idempotency *IdempotencyConfig `json:"idempotency" yaml:"idempotency"`

	Invoice *InvoiceConfig `json:"invoice" yaml:"invoice"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig selects the identity provider and its token settings.
type AuthConfig struct {
	// Provider is "firebase" or "local".
	Provider       string        `json:"provider" yaml:"provider"`
	AdminRole      string        `json:"adminRole" yaml:"adminRole"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	GuestTokenTTL  time.Duration `json:"guestTokenTTL" yaml:"guestTokenTTL"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	MinPassword    int           `json:"minPassword" yaml:"minPassword"`
}

// FirebaseConfig defines Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	StorageBucket   string `json:"storageBucket" yaml:"storageBucket"`
}

// DocstoreConfig holds gocloud docstore URLs for each collection.
// UserOrdersURL must contain the {userID} placeholder.
type DocstoreConfig struct {
	ProductsURL    string `json:"productsURL" yaml:"productsURL"`
	CategoriesURL  string `json:"categoriesURL" yaml:"categoriesURL"`
	CartsURL       string `json:"cartsURL" yaml:"cartsURL"`
	OrdersURL      string `json:"ordersURL" yaml:"ordersURL"`
	UserOrdersURL  string `json:"userOrdersURL" yaml:"userOrdersURL"`
	UsersURL       string `json:"usersURL" yaml:"usersURL"`
	CredentialsURL string `json:"credentialsURL" yaml:"credentialsURL"`
	DevicesURL     string `json:"devicesURL" yaml:"devicesURL"`
}

// BlobConfig holds the product image bucket.
type BlobConfig struct {
	BucketURL      string `json:"bucketURL" yaml:"bucketURL"`
	PublicBaseURL  string `json:"publicBaseURL" yaml:"publicBaseURL"`
	MaxUploadBytes int64  `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// WriteBehindConfig tunes the background document writer.
type WriteBehindConfig struct {
	Workers        int           `json:"workers" yaml:"workers"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	WriteTimeout   time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	ReplayInterval time.Duration `json:"replayInterval" yaml:"replayInterval"`
	DrainTimeout   time.Duration `json:"drainTimeout" yaml:"drainTimeout"`
}

// DeadLetterConfig selects where exhausted writes are parked.
type DeadLetterConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver     string `json:"driver" yaml:"driver"`
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
}

type CartConfig struct {
	HydrateTimeout time.Duration `json:"hydrateTimeout" yaml:"hydrateTimeout"`
	IdleTTL        time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// PubSubConfig defines order event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`
}

type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

type IdempotencyConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// InvoiceConfig controls rendered invoices.
type InvoiceConfig struct {
	ShopName        string `json:"shopName" yaml:"shopName"`
	DeliveryCharge  string `json:"deliveryCharge" yaml:"deliveryCharge"`
	CurrencySymbol  string `json:"currencySymbol" yaml:"currencySymbol"`
	TrackingURLBase string `json:"trackingURLBase" yaml:"trackingURLBase"`
	QRSize          int    `json:"qrSize" yaml:"qrSize"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig configures the order event worker.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// KafkaGroupID is the consumer group used when pubsub.provider is "kafka".
	KafkaGroupID string `json:"kafkaGroupId" yaml:"kafkaGroupId"`
	// Embedded runs the push endpoint inside the API process. Needed when
	// the document store is in-memory and cannot be shared.
	Embedded bool `json:"embedded" yaml:"embedded"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: DOCSTORE_CARTSURL -> docstore.cartsURL
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
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	if explicit := strings.TrimSpace(os.Getenv(ConfigPathEnv)); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "config file %s", explicit)
		}

		return explicit, nil
	}

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg, err := LoadWithEnv[Config](defaultConfigName, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = "local"
	}
	if cfg.Auth.AdminRole == "" {
		cfg.Auth.AdminRole = "admin"
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Auth.GuestTokenTTL <= 0 {
		cfg.Auth.GuestTokenTTL = 30 * 24 * time.Hour
	}
	if cfg.Auth.MinPassword <= 0 {
		cfg.Auth.MinPassword = 6
	}
	if cfg.WriteBehind == nil {
		cfg.WriteBehind = &WriteBehindConfig{}
	}
	wb := cfg.WriteBehind
	if wb.Workers <= 0 {
		wb.Workers = 4
	}
	if wb.MaxAttempts <= 0 {
		wb.MaxAttempts = 8
	}
	if wb.InitialBackoff <= 0 {
		wb.InitialBackoff = 200 * time.Millisecond
	}
	if wb.MaxBackoff <= 0 {
		wb.MaxBackoff = 10 * time.Second
	}
	if wb.WriteTimeout <= 0 {
		wb.WriteTimeout = 10 * time.Second
	}
	if wb.ReplayInterval <= 0 {
		wb.ReplayInterval = time.Minute
	}
	if wb.DrainTimeout <= 0 {
		wb.DrainTimeout = 5 * time.Second
	}
	if cfg.DeadLetter == nil {
		cfg.DeadLetter = &DeadLetterConfig{}
	}
	if cfg.DeadLetter.Driver == "" {
		cfg.DeadLetter.Driver = "sqlite"
	}
	if cfg.DeadLetter.SQLitePath == "" {
		cfg.DeadLetter.SQLitePath = "dead_letters.db"
	}
	if cfg.Cart == nil {
		cfg.Cart = &CartConfig{}
	}
	if cfg.Cart.HydrateTimeout <= 0 {
		cfg.Cart.HydrateTimeout = 5 * time.Second
	}
	if cfg.Cart.IdleTTL <= 0 {
		cfg.Cart.IdleTTL = 30 * time.Minute
	}
	if cfg.Idempotency == nil {
		cfg.Idempotency = &IdempotencyConfig{}
	}
	if cfg.Idempotency.TTL <= 0 {
		cfg.Idempotency.TTL = 24 * time.Hour
	}
	if cfg.Invoice == nil {
		cfg.Invoice = &InvoiceConfig{}
	}
	if cfg.Invoice.ShopName == "" {
		cfg.Invoice.ShopName = "Super Shop"
	}
	if cfg.Invoice.DeliveryCharge == "" {
		cfg.Invoice.DeliveryCharge = "60"
	}
	if cfg.Invoice.CurrencySymbol == "" {
		cfg.Invoice.CurrencySymbol = "৳"
	}
	if cfg.Invoice.QRSize <= 0 {
		cfg.Invoice.QRSize = 128
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Blob != nil && cfg.Blob.MaxUploadBytes <= 0 {
		cfg.Blob.MaxUploadBytes = 5 << 20
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = 8081
	}
	if cfg.Worker.KafkaGroupID == "" {
		cfg.Worker.KafkaGroupID = "storefront-worker"
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Docstore == nil {
		return errors.New("docstore configuration is required")
	}
	if !strings.Contains(c.Docstore.UserOrdersURL, "{userID}") {
		return errors.New("docstore.userOrdersURL must contain {userID}")
	}

	switch c.Auth.Provider {
	case "local":
		if c.SecretKey.Access == "" {
			return errors.New("secretKey.access is required for the local auth provider")
		}
	case "firebase":
		if c.Firebase == nil || c.Firebase.ProjectID == "" {
			return errors.New("firebase configuration is required for the firebase auth provider")
		}
	default:
		return errors.Errorf("unknown auth provider: %s", c.Auth.Provider)
	}

	switch c.DeadLetter.Driver {
	case "sqlite":
	case "postgres":
		if c.Postgres == nil {
			return errors.New("postgres configuration is required for the postgres dead letter driver")
		}
	default:
		return errors.Errorf("unknown dead letter driver: %s", c.DeadLetter.Driver)
	}

	return nil
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
