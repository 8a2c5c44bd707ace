package menu

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/configuration"
	"github.com/deskflow/deskflow/pkg/eventbus"
	"github.com/deskflow/deskflow/pkg/metrics"
	"github.com/deskflow/deskflow/pkg/navsource"
	"github.com/deskflow/deskflow/pkg/sidebar"
	"github.com/deskflow/deskflow/pkg/types"
)

// UserContextSource supplies the permission context for a user. A failure is
// recovered by policy substitution, never surfaced.
type UserContextSource interface {
	UserContext(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Options struct {
	Source   navsource.Source
	Fallback *navsource.StaticSource
	Users    UserContextSource
	Cache    *sidebar.Cache
	RoleMap  sidebar.RoleNavigationMap
	Policy   configuration.AuthFallbackPolicy
	Logger   *logrus.Logger
}

// Service composes display-ready navigation: it loads the tree and the
// permission context in parallel, substitutes documented fallbacks when a
// source fails, runs the pure filter and degrades to public-only entries
// when filtering would blank a non-empty menu.
type Service struct {
	source   navsource.Source
	fallback *navsource.StaticSource
	users    UserContextSource
	cache    *sidebar.Cache
	roleMap  sidebar.RoleNavigationMap
	policy   configuration.AuthFallbackPolicy
	log      *logrus.Logger

	seq       atomic.Uint64
	delivered atomic.Uint64
}

func NewService(opts *Options) *Service {
	source := opts.Source
	if source == nil {
		source = opts.Fallback
	}
	return &Service{
		source:   source,
		fallback: opts.Fallback,
		users:    opts.Users,
		cache:    opts.Cache,
		roleMap:  opts.RoleMap,
		policy:   opts.Policy,
		log:      opts.Logger,
	}
}

// Menu returns the filtered navigation tree for the user.
func (s *Service) Menu(ctx context.Context, userID uuid.UUID) []types.NavigationItem {
	return s.build(ctx, userID, false)
}

// Refresh bypasses upstream caches and recomputes the user's menu.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) []types.NavigationItem {
	s.cache.Invalidate(userID)
	return s.build(ctx, userID, true)
}

// RegisterEvents subscribes the cache invalidation handlers. Each event
// marks the start of a fresh, independent filter pass on next request.
func (s *Service) RegisterEvents(bus eventbus.EventBus) {
	bus.Subscribe(func(e *UserLoggedInEvent) {
		s.cache.Invalidate(e.UserID)
	})
	bus.Subscribe(func(e *PermissionsReloadedEvent) {
		s.cache.Invalidate(e.UserID)
	})
	bus.Subscribe(func(e *NavigationUpdatedEvent) {
		s.cache.Reset()
	})
}

func (s *Service) build(ctx context.Context, userID uuid.UUID, bypassCache bool) []types.NavigationItem {
	seq := s.seq.Add(1)

	// The two upstream loads are independent; the filter only runs once
	// both have resolved or been substituted.
	var tree *navsource.Tree
	var u user.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tree = s.loadTree(gctx, bypassCache)
		return nil
	})
	g.Go(func() error {
		u = s.loadUserContext(gctx, userID)
		return nil
	})
	_ = g.Wait()

	if !bypassCache {
		if cached, ok := s.cache.Get(userID, tree.Version); ok {
			metrics.NavigationCacheHits.Inc()
			return cached
		}
	}
	metrics.NavigationCacheMisses.Inc()

	items := s.roleMap.Apply(tree.Items, u.Role())
	filtered := sidebar.Filter(items, u)
	if len(filtered) == 0 && len(tree.Items) > 0 {
		metrics.NavigationFallbacks.WithLabelValues("empty_result").Inc()
		s.log.WithField("user_id", userID).Warn("navigation: filter removed every entry, degrading to public-only")
		filtered = sidebar.PublicOnly(items)
	}
	metrics.NavigationFilterPasses.Inc()

	if s.advance(seq) {
		s.cache.Put(userID, tree.Version, filtered)
	} else {
		// A later pass already completed; serve this result to its own
		// caller but do not let it clobber the cache.
		metrics.NavigationStaleResults.Inc()
		s.log.WithField("user_id", userID).Debug("navigation: stale filter pass, result not cached")
	}
	return filtered
}

func (s *Service) loadTree(ctx context.Context, bypassCache bool) *navsource.Tree {
	tree, err := s.source.Fetch(ctx, bypassCache)
	if err != nil {
		metrics.NavigationFallbacks.WithLabelValues("source").Inc()
		s.log.WithError(err).Warn("navigation: source unavailable, using fallback tree")
		return s.fallback.Tree()
	}
	return tree
}

func (s *Service) loadUserContext(ctx context.Context, userID uuid.UUID) user.User {
	u, err := s.users.UserContext(ctx, userID)
	if err != nil {
		metrics.NavigationFallbacks.WithLabelValues("permissions").Inc()
		if s.policy == configuration.AuthFallbackSuperuser {
			s.log.WithError(err).Warn("navigation: permission source unavailable, substituting superuser context per policy")
			return user.Superuser(userID)
		}
		s.log.WithError(err).Warn("navigation: permission source unavailable, substituting minimal context")
		return user.Minimal(userID)
	}
	return u
}

func (s *Service) advance(seq uint64) bool {
	for {
		last := s.delivered.Load()
		if seq <= last {
			return false
		}
		if s.delivered.CompareAndSwap(last, seq) {
			return true
		}
	}
}
