package redis

import (
	"context"
	"testing"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{name: "no addresses", mutate: func(c *Config) { c.Addrs = nil }, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) { c.Mode = "sentinel" }, wantErr: true},
		{name: "zero pool", mutate: func(c *Config) { c.PoolSize = 0 }, wantErr: true},
		{name: "zero scan count", mutate: func(c *Config) { c.ScanCount = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.RedisConfigError)))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClient_NotConnected(t *testing.T) {
	c := NewClient(logger.NewNop(), DefaultConfig())

	_, err := c.Get(context.Background(), "k")
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.RedisConnectionError)))

	assert.NoError(t, c.Disconnect(context.Background()))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `aapl_orders_snap_2024-01-02T`, escapeGlob("aapl_orders_snap_2024-01-02T"))
	assert.Equal(t, `a\*b\?c\[d\]`, escapeGlob("a*b?c[d]"))
}
