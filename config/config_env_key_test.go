package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"identity": map[string]any{
			"provider": "local",
			"supabase": map[string]any{
				"anonKey": "",
			},
		},
		"rateLimit": map[string]any{
			"authPerMinute": 30,
		},
		"token": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "IDENTITY_SUPABASE_ANONKEY", want: "identity.supabase.anonKey"},
		{envKey: "IDENTITY_PROVIDER", want: "identity.provider"},
		{envKey: "RATELIMIT_AUTHPERMINUTE", want: "rateLimit.authPerMinute"},
		{envKey: "TOKEN_SECRET", want: "token.secret"},
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
