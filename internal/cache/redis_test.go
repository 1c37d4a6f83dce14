package cache

import (
	"context"
	"testing"

	"github.com/draftpost/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestInitRedisDisabled(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("disabled redis should not expose a client")
	}
	if err := Ping(context.Background()); err != nil {
		t.Fatalf("ping on disabled redis should be a no-op: %v", err)
	}
	if err := InitRedis(nil); err != nil {
		t.Fatalf("init nil failed: %v", err)
	}
}

func TestUseMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	Use(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	t.Cleanup(func() { _ = Close() })

	if !Enabled() {
		t.Fatalf("redis should be enabled")
	}
	if err := Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if err := Client().Set(context.Background(), Key("probe"), "1", 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !mr.Exists("dp:probe") {
		t.Fatalf("key should carry default prefix")
	}
}

func TestKey(t *testing.T) {
	Use(nil, "custom")
	t.Cleanup(func() { Use(nil, "") })

	cases := []struct {
		parts []string
		want  string
	}{
		{parts: nil, want: "custom"},
		{parts: []string{"rate_limit", "admin_write", "127.0.0.1"}, want: "custom:rate_limit:admin_write:127.0.0.1"},
		{parts: []string{" ", "x"}, want: "custom:x"},
	}
	for _, tc := range cases {
		if got := Key(tc.parts...); got != tc.want {
			t.Fatalf("Key(%v) want %s got %s", tc.parts, tc.want, got)
		}
	}
}
