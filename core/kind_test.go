package core

import "testing"

// TestKindPartition verifies every kind is either a hazard or the collectible, never both
func TestKindPartition(t *testing.T) {
	hazards := 0
	for k := Kind(0); k < kindCount; k++ {
		if k.IsHazard() {
			hazards++
		}
	}
	if hazards != len(HazardKinds) {
		t.Errorf("Expected %d hazard kinds, got %d", len(HazardKinds), hazards)
	}
	if KindCoin.IsHazard() {
		t.Error("Coin must not be a hazard")
	}
}

// TestParseKindRoundTrip verifies config names map back to kinds
func TestParseKindRoundTrip(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("Expected %v, got %v", k, got)
		}
	}

	if _, err := ParseKind("yeti"); err == nil {
		t.Error("Expected error for unknown kind name")
	}
}

// TestIsHazardPanicsOnUnknownKind verifies the variant set is closed
func TestIsHazardPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for out-of-range kind")
		}
	}()
	Kind(200).IsHazard()
}
