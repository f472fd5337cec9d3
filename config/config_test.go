package config

import (
	"testing"
)

func TestNew_defaults(t *testing.T) {
	SetDefaults()
	c := New()

	if c.WildCard != "_" {
		t.Errorf("New().WildCard = %q, want %q", c.WildCard, "_")
	}
	if c.SubstrateLength != 15 {
		t.Errorf("New().SubstrateLength = %d, want 15", c.SubstrateLength)
	}
	if c.Background != "random" {
		t.Errorf("New().Background = %q, want %q", c.Background, "random")
	}
	if c.NullSamples != 1000 {
		t.Errorf("New().NullSamples = %d, want 1000", c.NullSamples)
	}
	if c.Seed != 1234 {
		t.Errorf("New().Seed = %d, want 1234", c.Seed)
	}
	if c.PseudoCount != 1.0 {
		t.Errorf("New().PseudoCount = %v, want 1", c.PseudoCount)
	}
	if c.PCutPWM != 0.05 || c.PCutFC != 0.05 {
		t.Errorf("New() cutoffs = %v, %v, want 0.05, 0.05", c.PCutPWM, c.PCutFC)
	}
	if c.Permutations != 100 {
		t.Errorf("New().Permutations = %d, want 100", c.Permutations)
	}
	if c.Threads != 1 {
		t.Errorf("New().Threads = %d, want 1", c.Threads)
	}
	if c.ForceTrim || c.Verbose {
		t.Errorf("New() ForceTrim/Verbose should default to false")
	}
	if c.RemoveCenter != "" {
		t.Errorf("New().RemoveCenter = %q, want empty", c.RemoveCenter)
	}
}
