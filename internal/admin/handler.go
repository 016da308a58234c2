// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/sports-academy/internal/class"
	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/payment"
	"github.com/carterperez-dev/sports-academy/internal/user"
)

type UserCounter interface {
	CountByRole(ctx context.Context) (map[user.Role]int, error)
}

type ClassCounter interface {
	CountByStatus(ctx context.Context) (map[class.Status]int, error)
}

type PaymentStatser interface {
	Stats(ctx context.Context) (*payment.Stats, error)
}

type Handler struct {
	users      UserCounter
	classes    ClassCounter
	payments   PaymentStatser
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
}

type HandlerConfig struct {
	Users      UserCounter
	Classes    ClassCounter
	Payments   PaymentStatser
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:      cfg.Users,
		classes:    cfg.Classes,
		payments:   cfg.Payments,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/stats", h.GetStats)
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	var (
		roles    map[user.Role]int
		statuses map[class.Status]int
		payStats *payment.Stats
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		roles, err = h.users.CountByRole(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = h.classes.CountByStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		payStats, err = h.payments.Stats(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, StatsResponse{
		Users: UserStats{
			Students:    roles[user.RoleStudent],
			Instructors: roles[user.RoleInstructor],
			Admins:      roles[user.RoleAdmin],
		},
		Classes: ClassStats{
			Pending:  statuses[class.StatusPending],
			Approved: statuses[class.StatusApproved],
			Denied:   statuses[class.StatusDenied],
		},
		Payments: PaymentStats{
			Count:   payStats.Count,
			Revenue: core.FromMinorUnits(payStats.RevenueCents),
		},
		Pools: PoolStats{
			Database: h.getDBStats(),
			Redis:    h.getRedisStats(),
		},
	})
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	if stats == nil {
		return nil
	}
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}

type StatsResponse struct {
	Users    UserStats    `json:"users"`
	Classes  ClassStats   `json:"classes"`
	Payments PaymentStats `json:"payments"`
	Pools    PoolStats    `json:"pools"`
}

type UserStats struct {
	Students    int `json:"students"`
	Instructors int `json:"instructors"`
	Admins      int `json:"admins"`
}

type ClassStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Denied   int `json:"denied"`
}

type PaymentStats struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type PoolStats struct {
	Database *DBPoolStats    `json:"database,omitempty"`
	Redis    *RedisPoolStats `json:"redis,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"maxOpenConnections"`
	OpenConnections    int    `json:"openConnections"`
	InUse              int    `json:"inUse"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"waitCount"`
	WaitDuration       string `json:"waitDuration"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"totalConns"`
	IdleConns  uint32 `json:"idleConns"`
}
