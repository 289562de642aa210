package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sweep": map[string]any{
			"assumedSpeedKmh":   20,
			"suppressionWindow": "1h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SWEEP_ASSUMEDSPEEDKMH", want: "sweep.assumedSpeedKmh"},
		{envKey: "SWEEP_SUPPRESSIONWINDOW", want: "sweep.suppressionWindow"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplySweepDefaults(t *testing.T) {
	cfg := &Config{}
	applySweepDefaults(cfg)

	if cfg.Sweep.SuppressionWindow.Minutes() != 60 {
		t.Fatalf("default suppression window = %v, want 60m", cfg.Sweep.SuppressionWindow)
	}
	if cfg.Sweep.AssumedSpeedKmh != 20 {
		t.Fatalf("default assumed speed = %v, want 20", cfg.Sweep.AssumedSpeedKmh)
	}
	if cfg.Sweep.DefaultRadiusKm != 1 {
		t.Fatalf("default radius = %v, want 1", cfg.Sweep.DefaultRadiusKm)
	}
	if cfg.Sweep.Concurrency != 8 {
		t.Fatalf("default concurrency = %v, want 8", cfg.Sweep.Concurrency)
	}
}
