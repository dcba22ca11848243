package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: storefront
http:
  port: 8080
secretKey:
  access: test-secret
docstore:
  productsURL: mem://products/id
  categoriesURL: mem://categories/id
  cartsURL: mem://carts/userID
  ordersURL: mem://orders/id
  userOrdersURL: mem://users/{userID}/orders/id
  usersURL: mem://users/id
  credentialsURL: mem://credentials/email
  devicesURL: mem://devices/id
writeBehind:
  maxAttempts: 3
pubsub:
  provider: kafka
  kafkaTopic: orders
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestNew_AppliesDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnv, writeConfig(t, testYAML))
	t.Setenv("WRITEBEHIND_INITIALBACKOFF", "50ms")
	t.Setenv("PUBSUB_KAFKABROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Auth.Provider)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, 3, cfg.WriteBehind.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.WriteBehind.InitialBackoff)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.PubSub.KafkaBrokers)
	assert.Equal(t, "sqlite", cfg.DeadLetter.Driver)
	assert.Equal(t, "60", cfg.Invoice.DeliveryCharge)
	assert.Equal(t, "Super Shop", cfg.Invoice.ShopName)
	assert.Equal(t, 5*time.Second, cfg.Cart.HydrateTimeout)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, "storefront-worker", cfg.Worker.KafkaGroupID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "missing user placeholder",
			mutate:  func(cfg *Config) { cfg.Docstore.UserOrdersURL = "mem://user_orders/id" },
			wantErr: "{userID}",
		},
		{
			name:    "local provider without secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "" },
			wantErr: "secretKey.access",
		},
		{
			name:    "firebase provider without firebase section",
			mutate:  func(cfg *Config) { cfg.Auth.Provider = "firebase" },
			wantErr: "firebase configuration",
		},
		{
			name:    "postgres dead letters without postgres",
			mutate:  func(cfg *Config) { cfg.DeadLetter.Driver = "postgres" },
			wantErr: "postgres configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnv, writeConfig(t, testYAML))

			cfg, err := New()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
