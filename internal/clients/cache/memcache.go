package cache

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/logger"
	"max.ks1230/money-tracker/internal/model/summary"

	"github.com/bradfitz/gomemcache/memcache"
)

type memcachedConfig interface {
	Hosts() []string
}

// MemcacheClient caches rendered period reports per owner. Mutations
// invalidate every period for the owner, so a cached report is never
// older than the owner's last write.
type MemcacheClient struct {
	client *memcache.Client
}

func NewMemcache(config memcachedConfig) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(owner, period string) string {
	return owner + ":" + period
}

func (mc *MemcacheClient) CacheReport(owner, period, report string) error {
	logger.Info("cache report", zap.String("owner", owner), zap.String("period", period))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(owner, period),
		Value: []byte(report)},
	)
}

func (mc *MemcacheClient) GetReport(owner, period string) (string, bool) {
	item, err := mc.client.Get(formatKey(owner, period))
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			logger.Error("get report from cache", zap.Error(err))
		}
		return "", false
	}
	logger.Info("report cache hit", zap.String("owner", owner), zap.String("period", period))
	return string(item.Value), true
}

func (mc *MemcacheClient) InvalidateReports(owner string) error {
	logger.Info("invalidate reports", zap.String("owner", owner))

	for _, period := range summary.ReportPeriods() {
		err := mc.client.Delete(formatKey(owner, period))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
