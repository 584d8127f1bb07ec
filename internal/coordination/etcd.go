package coordination

import (
	"context"
	"fmt"
	"strings"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/common/config"
)

// EtcdStore implements Store on etcd v3. Liveness-bound nodes are keys
// attached to a single session lease that is kept alive for the process
// lifetime and revoked on Close.
type EtcdStore struct {
	client  *clientv3.Client
	leaseID clientv3.LeaseID
	logger  *zap.Logger
	cancel  context.CancelFunc
}

func NewEtcdStore(ctx context.Context, cfg config.CoordinationConfig, logger *zap.Logger) (*EtcdStore, error) {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create etcd client: %w", err)
	}

	ttl := int64(cfg.SessionTTL.Seconds())
	if ttl < 1 {
		ttl = 1
	}

	grantCtx, cancelGrant := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancelGrant()

	lease, err := client.Grant(grantCtx, ttl)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("grant session lease: %w", err)
	}

	keepCtx, cancel := context.WithCancel(context.Background())
	keepalive, err := client.KeepAlive(keepCtx, lease.ID)
	if err != nil {
		cancel()
		_ = client.Close()
		return nil, fmt.Errorf("keep session lease alive: %w", err)
	}

	s := &EtcdStore{
		client:  client,
		leaseID: lease.ID,
		logger:  logger,
		cancel:  cancel,
	}

	go func() {
		for range keepalive {
		}
		// Channel closed: the lease is gone or the keepalive was cancelled.
		// Our registry node vanishes with the lease; peers will see the slot
		// as free, so this process must not keep serving.
		s.logger.Warn("etcd session keepalive channel closed",
			zap.Int64("lease_id", int64(s.leaseID)),
		)
	}()

	logger.Info("etcd session established",
		zap.Strings("endpoints", cfg.Endpoints),
		zap.Int64("lease_ttl_seconds", ttl),
	)

	return s, nil
}

func (s *EtcdStore) CreateLive(ctx context.Context, key, value string) error {
	resp, err := s.client.Txn(ctx).
		If(clientv3.Compare(clientv3.CreateRevision(key), "=", 0)).
		Then(clientv3.OpPut(key, value, clientv3.WithLease(s.leaseID))).
		Commit()
	if err != nil {
		return fmt.Errorf("create %s: %w", key, err)
	}
	if !resp.Succeeded {
		return ErrNodeExists
	}
	return nil
}

func (s *EtcdStore) Get(ctx context.Context, key string) (string, error) {
	resp, err := s.client.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if len(resp.Kvs) == 0 {
		return "", ErrNotFound
	}
	return string(resp.Kvs[0].Value), nil
}

func (s *EtcdStore) ListChildren(ctx context.Context, prefix string) (map[string]string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"

	resp, err := s.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	children := make(map[string]string, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		name := strings.TrimPrefix(string(kv.Key), prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		children[name] = string(kv.Value)
	}
	return children, nil
}

// Ping verifies the store is reachable; used by the health checker.
func (s *EtcdStore) Ping(ctx context.Context) error {
	_, err := s.client.Get(ctx, "health")
	return err
}

func (s *EtcdStore) Close() error {
	s.cancel()

	// Revoke rather than let the lease expire: the worker slot frees
	// immediately instead of after the session TTL.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.client.Revoke(ctx, s.leaseID); err != nil {
		s.logger.Warn("revoke session lease", zap.Error(err))
	}

	return s.client.Close()
}
