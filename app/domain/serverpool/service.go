package serverpool

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

const (
	defaultLocalRelayURL = "http://127.0.0.1:8899"
	// Last-resort endpoint when no relay servers are configured at all.
	fallbackRelayURL = "https://relay-sg1.flowrelay.ai"

	// A web session keeps its relay selection until the session token
	// itself expires.
	sessionSelectionTTL = 24 * time.Hour
)

// Service resolves which relay server an upstream request targets.
// Exactly one endpoint is active per web session; desktop builds always
// use the bundled local relay.
type Service struct {
	cache       cache.CacheService
	servers     []Server
	desktopMode bool
	localURL    string
	defaultURL  string

	mu        sync.RWMutex
	unhealthy map[string]bool
}

func NewService(cacheService cache.CacheService) *Service {
	env := &environment_variables.EnvironmentVariables

	localURL := env.LOCAL_RELAY_URL
	if localURL == "" {
		localURL = defaultLocalRelayURL
	}
	defaultURL := env.DEFAULT_RELAY_URL
	if defaultURL == "" {
		defaultURL = fallbackRelayURL
	}

	servers := make([]Server, 0, len(env.RELAY_SERVERS))
	for _, entry := range env.RELAY_SERVERS {
		label, url, found := strings.Cut(entry, "=")
		if !found {
			url = label
			label = ""
		}
		url = strings.TrimRight(strings.TrimSpace(url), "/")
		if url == "" {
			continue
		}
		servers = append(servers, Server{Label: strings.TrimSpace(label), URL: url})
	}

	return &Service{
		cache:       cacheService,
		servers:     servers,
		desktopMode: env.DESKTOP_MODE,
		localURL:    localURL,
		defaultURL:  defaultURL,
		unhealthy:   map[string]bool{},
	}
}

func (s *Service) Servers() []Server {
	return s.servers
}

// Resolve picks the relay endpoint for one request. Resolution order:
// desktop local relay, explicit override (multi-step pinning), the
// session's previous selection, local-dev preference, then a uniform
// random pick persisted for the remainder of the session. It always
// returns a value.
func (s *Service) Resolve(ctx context.Context, sessionID, override, clientHost string) string {
	if s.desktopMode {
		return s.localURL
	}
	if override != "" {
		return override
	}

	sessionKey := fmt.Sprintf(cache.SessionRelayKeyPattern, sessionID)
	if sessionID != "" {
		if selected, err := s.cache.Get(ctx, sessionKey); err == nil && selected != "" {
			return selected
		}
	}

	if isLocalHost(clientHost) {
		for _, server := range s.servers {
			if server.URL == s.localURL {
				return s.localURL
			}
		}
	}

	selected := s.randomServer()

	if sessionID != "" {
		if err := s.cache.Set(ctx, sessionKey, selected, sessionSelectionTTL); err != nil {
			logger.GetLogger().Warnf("failed to persist relay selection: %v", err)
		}
	}
	return selected
}

// MarkHealth records the health-cron verdict for one endpoint.
func (s *Service) MarkHealth(url string, healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if healthy {
		delete(s.unhealthy, url)
	} else {
		s.unhealthy[url] = true
	}
}

func (s *Service) randomServer() string {
	candidates := s.availableServers()
	if len(candidates) == 0 {
		return s.defaultURL
	}
	return candidates[rand.Intn(len(candidates))].URL
}

// availableServers filters out endpoints the health cron flagged; when the
// whole set is flagged the full list is used rather than nothing.
func (s *Service) availableServers() []Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	healthy := make([]Server, 0, len(s.servers))
	for _, server := range s.servers {
		if !s.unhealthy[server.URL] {
			healthy = append(healthy, server)
		}
	}
	if len(healthy) == 0 {
		return s.servers
	}
	return healthy
}

func isLocalHost(host string) bool {
	host = strings.TrimPrefix(strings.TrimPrefix(host, "http://"), "https://")
	if host == "" {
		return false
	}
	if i := strings.LastIndex(host, ":"); i > 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return host == "localhost" || host == "127.0.0.1" || host == "[::1]" || host == "::1"
}
