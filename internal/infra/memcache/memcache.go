package memcache

import (
	"context"
	"time"

	"casework_notifier/internal/domain/settings"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotKey = "settings_snapshot"

// SettingsCache is the fast tier of the settings chain: one in-process
// entry holding the whole snapshot under a bounded TTL. Storing a copy
// keeps the cached map immune to mutation by callers.
type SettingsCache struct {
	c *gocache.Cache
}

func NewSettingsCache(ttl time.Duration) *SettingsCache {
	return &SettingsCache{c: gocache.New(ttl, ttl)}
}

func (m *SettingsCache) Load(_ context.Context) (map[string]string, error) {
	v, ok := m.c.Get(snapshotKey)
	if !ok {
		return nil, settings.ErrTierMiss
	}
	return copyMap(v.(map[string]string)), nil
}

func (m *SettingsCache) Store(_ context.Context, values map[string]string) error {
	m.c.Set(snapshotKey, copyMap(values), gocache.DefaultExpiration)
	return nil
}

func (m *SettingsCache) Invalidate(_ context.Context) error {
	m.c.Delete(snapshotKey)
	return nil
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
