package lease

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrRunInProgress = errors.New("a run is already in progress for this customer")
	ErrLeaseLost     = errors.New("run lease expired or taken by another holder")
)

const (
	defaultTTL       = 15 * time.Minute
	defaultKeyPrefix = "run-lease"
)

// só apaga a chave se o token ainda for o do dono
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// só estende o prazo se o token ainda for o do dono
var renewScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

//go:generate mockgen -source=redis.go -destination=mocks/redis.go -package=mocks

// Leaser garante no máximo uma execução em andamento por cliente
type Leaser interface {
	Acquire(ctx context.Context, customerID string) (string, error)
	Release(ctx context.Context, customerID, token string) error
	Renew(ctx context.Context, customerID, token string) error
}

type RedisLeaser struct {
	client    goredis.UniversalClient
	ttl       time.Duration
	keyPrefix string
}

func NewRedisLeaser(client goredis.UniversalClient, ttl time.Duration, keyPrefix string) *RedisLeaser {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisLeaser{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

func (l *RedisLeaser) key(customerID string) string {
	return fmt.Sprintf("%s:%s", l.keyPrefix, customerID)
}

// Acquire devolve o token do lease, ou ErrRunInProgress quando outro processo já o detém
func (l *RedisLeaser) Acquire(ctx context.Context, customerID string) (string, error) {
	token, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("lease: generating token: %w", err)
	}

	acquired, err := l.client.SetNX(ctx, l.key(customerID), token, l.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("lease: acquiring %s: %w", customerID, err)
	}
	if !acquired {
		return "", ErrRunInProgress
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"ttl":         l.ttl.String(),
	}).Debug("lease: adquirido")

	return token, nil
}

func (l *RedisLeaser) Release(ctx context.Context, customerID, token string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key(customerID)}, token).Int()
	if err != nil {
		return fmt.Errorf("lease: releasing %s: %w", customerID, err)
	}
	if deleted == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Renew devolve ao lease o TTL completo. ErrLeaseLost quando o token não é mais o dono.
func (l *RedisLeaser) Renew(ctx context.Context, customerID, token string) error {
	renewed, err := renewScript.Run(ctx, l.client, []string{l.key(customerID)}, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("lease: renewing %s: %w", customerID, err)
	}
	if renewed == 0 {
		return ErrLeaseLost
	}
	return nil
}

// KeepAlive renova o lease a cada interval até stop ser chamado, ctx terminar ou o lease
// ser perdido. stop espera a renovação em curso terminar.
func KeepAlive(ctx context.Context, l Leaser, customerID, token string, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = RenewInterval(0)
	}

	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := l.Renew(ctx, customerID, token)
				if err == nil {
					continue
				}

				entry := logrus.WithFields(logrus.Fields{
					"customer_id": customerID,
					"error":       err.Error(),
				})
				if errors.Is(err, ErrLeaseLost) {
					entry.Error("lease: perdido durante a execução")
					return
				}
				entry.Warn("lease: falha ao renovar, nova tentativa no próximo ciclo")
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}

// RenewInterval é o intervalo de renovação para um TTL: três renovações por prazo
func RenewInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return ttl / 3
}
