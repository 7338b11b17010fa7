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
		"firestore": map[string]any{
			"projectId": "",
		},
		"seed": map[string]any{
			"counts": map[string]any{
				"giftTransactions": 0,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "FIRESTORE_PROJECTID", want: "firestore.projectId"},
		{envKey: "SEED_COUNTS_GIFTTRANSACTIONS", want: "seed.counts.giftTransactions"},
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

func TestApplyDefaults_FillsBatchingKnobs(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Seed.Checkpoint != defaultCheckpoint {
		t.Fatalf("seed checkpoint = %d, want %d", cfg.Seed.Checkpoint, defaultCheckpoint)
	}
	if cfg.Projection.BlockSize != defaultBlockSize {
		t.Fatalf("projection block size = %d, want %d", cfg.Projection.BlockSize, defaultBlockSize)
	}
	if cfg.Stress.RelationalCheckpoint != defaultStressCheckpoint {
		t.Fatalf("relational checkpoint = %d, want %d", cfg.Stress.RelationalCheckpoint, defaultStressCheckpoint)
	}
	if len(cfg.Stress.ReadLoads) == 0 || len(cfg.Stress.InsertLoads) == 0 {
		t.Fatal("stress load sequences should have defaults")
	}
}
