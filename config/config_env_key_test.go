package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"token": map[string]any{
			"accessTtl": "15m",
		},
		"rateLimit": map[string]any{
			"expiresIn": "3m",
		},
		"smtp": map[string]any{
			"verifyBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MAXOPENCONNS", want: "postgres.maxOpenConns"},
		{envKey: "TOKEN_ACCESSTTL", want: "token.accessTtl"},
		{envKey: "RATELIMIT_EXPIRESIN", want: "rateLimit.expiresIn"},
		{envKey: "SMTP_VERIFYBASEURL", want: "smtp.verifyBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPostgresConfig_ReplicaDSNs_FallsBackToPrimaryCredentials(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "primary",
		Port:     "5432",
		Username: "app",
		Password: "secret",
		Database: "rolodex",
		Replicas: []ConnectionConfig{
			{Host: "replica-0", Port: "5432"},
			{Host: "replica-1", Port: "5433", UserName: "reader", Password: "ro"},
		},
	}

	dsns := cfg.ReplicaDSNs()
	if len(dsns) != 2 {
		t.Fatalf("expected 2 replica DSNs, got %d", len(dsns))
	}

	want0 := "host=replica-0 port=5432 user=app password=secret dbname=rolodex sslmode=disable"
	if dsns[0] != want0 {
		t.Fatalf("dsns[0] = %q, want %q", dsns[0], want0)
	}

	want1 := "host=replica-1 port=5433 user=reader password=ro dbname=rolodex sslmode=disable"
	if dsns[1] != want1 {
		t.Fatalf("dsns[1] = %q, want %q", dsns[1], want1)
	}
}
