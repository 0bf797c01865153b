package orekit

import "testing"

func TestConfigDefaults(t *testing.T) {
	cfg := orekitConfig()
	if cfg.keplerTolerance != 1e-12 {
		t.Fatalf("wrong default Kepler tolerance: %e", cfg.keplerTolerance)
	}
	if cfg.keplerMaxIter != 50 {
		t.Fatalf("wrong default Kepler iteration budget: %d", cfg.keplerMaxIter)
	}
	// Repeated calls answer the memoized configuration.
	if orekitConfig() != cfg {
		t.Fatal("configuration must be loaded exactly once")
	}
}
