package serverpool

import (
	"context"
	"testing"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

func setEnv(t *testing.T, mutate func(env *environment_variables.EnvironmentVariable)) {
	t.Helper()
	saved := environment_variables.EnvironmentVariables
	mutate(&environment_variables.EnvironmentVariables)
	t.Cleanup(func() {
		environment_variables.EnvironmentVariables = saved
	})
}

func TestResolveDesktopMode(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = true
		env.LOCAL_RELAY_URL = ""
		env.RELAY_SERVERS = []string{"sg1=https://relay-sg1.example.com"}
	})
	s := NewService(cache.NewMemoryCacheService())

	got := s.Resolve(context.Background(), "sess-1", "", "https://app.example.com")
	if got != defaultLocalRelayURL {
		t.Errorf("Resolve = %q, want %q", got, defaultLocalRelayURL)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = []string{"sg1=https://relay-sg1.example.com"}
	})
	s := NewService(cache.NewMemoryCacheService())

	got := s.Resolve(context.Background(), "sess-1", "https://pinned.example.com", "")
	if got != "https://pinned.example.com" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveSessionSticky(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = []string{
			"sg1=https://relay-sg1.example.com",
			"sg2=https://relay-sg2.example.com",
			"us1=https://relay-us1.example.com",
		}
	})
	s := NewService(cache.NewMemoryCacheService())

	ctx := context.Background()
	first := s.Resolve(ctx, "sess-1", "", "https://app.example.com")
	for i := 0; i < 20; i++ {
		if got := s.Resolve(ctx, "sess-1", "", "https://app.example.com"); got != first {
			t.Fatalf("selection changed within a session: %q then %q", first, got)
		}
	}
}

func TestResolvePicksConfiguredServer(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = []string{
			"sg1=https://relay-sg1.example.com",
			"sg2=https://relay-sg2.example.com",
		}
	})
	s := NewService(cache.NewMemoryCacheService())

	allowed := map[string]bool{
		"https://relay-sg1.example.com": true,
		"https://relay-sg2.example.com": true,
	}
	for i := 0; i < 20; i++ {
		// Empty session: every call draws fresh.
		if got := s.Resolve(context.Background(), "", "", ""); !allowed[got] {
			t.Fatalf("Resolve = %q, not in the configured set", got)
		}
	}
}

func TestResolveEmptyPoolFallsBack(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = nil
		env.DEFAULT_RELAY_URL = "https://relay-default.example.com"
	})
	s := NewService(cache.NewMemoryCacheService())

	if got := s.Resolve(context.Background(), "", "", ""); got != "https://relay-default.example.com" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveLocalDevPreference(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.LOCAL_RELAY_URL = "http://127.0.0.1:8899"
		env.RELAY_SERVERS = []string{
			"local=http://127.0.0.1:8899",
			"sg1=https://relay-sg1.example.com",
		}
	})
	s := NewService(cache.NewMemoryCacheService())

	got := s.Resolve(context.Background(), "", "", "http://localhost:3000")
	if got != "http://127.0.0.1:8899" {
		t.Errorf("Resolve = %q, want the local relay for a localhost client", got)
	}
}

func TestResolveLocalHostWithoutLocalServer(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.LOCAL_RELAY_URL = "http://127.0.0.1:8899"
		env.RELAY_SERVERS = []string{"sg1=https://relay-sg1.example.com"}
	})
	s := NewService(cache.NewMemoryCacheService())

	// The local relay is not in the pool: localhost clients get a normal pick.
	got := s.Resolve(context.Background(), "", "", "http://localhost:3000")
	if got != "https://relay-sg1.example.com" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestMarkHealthFiltersSelection(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = []string{
			"sg1=https://relay-sg1.example.com",
			"sg2=https://relay-sg2.example.com",
		}
	})
	s := NewService(cache.NewMemoryCacheService())
	s.MarkHealth("https://relay-sg1.example.com", false)

	for i := 0; i < 20; i++ {
		if got := s.Resolve(context.Background(), "", "", ""); got != "https://relay-sg2.example.com" {
			t.Fatalf("Resolve = %q, want the healthy server", got)
		}
	}

	// Whole pool flagged: fall back to the full list rather than nothing.
	s.MarkHealth("https://relay-sg2.example.com", false)
	if got := s.Resolve(context.Background(), "", "", ""); got == "" {
		t.Error("Resolve returned empty with all servers flagged")
	}

	// Recovery restores filtering.
	s.MarkHealth("https://relay-sg1.example.com", true)
	s.MarkHealth("https://relay-sg2.example.com", true)
	if got := s.Resolve(context.Background(), "", "", ""); got == "" {
		t.Error("Resolve returned empty after recovery")
	}
}

func TestServerListParsing(t *testing.T) {
	setEnv(t, func(env *environment_variables.EnvironmentVariable) {
		env.DESKTOP_MODE = false
		env.RELAY_SERVERS = []string{
			"sg1=https://relay-sg1.example.com/",
			"https://relay-unlabeled.example.com",
			"broken=",
		}
	})
	s := NewService(cache.NewMemoryCacheService())

	servers := s.Servers()
	if len(servers) != 2 {
		t.Fatalf("len(servers) = %d, want 2: %+v", len(servers), servers)
	}
	if servers[0].Label != "sg1" || servers[0].URL != "https://relay-sg1.example.com" {
		t.Errorf("servers[0] = %+v", servers[0])
	}
	if servers[1].Label != "" || servers[1].URL != "https://relay-unlabeled.example.com" {
		t.Errorf("servers[1] = %+v", servers[1])
	}
}

func TestIsLocalHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"http://localhost:3000", true},
		{"https://localhost", true},
		{"127.0.0.1:8080", true},
		{"localhost", true},
		{"", false},
		{"https://app.example.com", false},
		{"localhost.example.com", false},
	}
	for _, tt := range tests {
		if got := isLocalHost(tt.host); got != tt.want {
			t.Errorf("isLocalHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
