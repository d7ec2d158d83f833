// ABOUTME: Tests for the in-memory Gateway backend.
// ABOUTME: Covers the Gateway contract: get/set/remove/keys semantics.
package storage

import (
	"reflect"
	"testing"
)

func TestMemoryGatewayGetSet(t *testing.T) {
	gw := NewMemoryGateway()

	if _, ok, err := gw.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := gw.Set("k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok, _ := gw.Get("k"); !ok || v != "v1" {
		t.Errorf("Get(k) = %q ok=%v, want v1", v, ok)
	}

	// Last write wins.
	if err := gw.Set("k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _, _ := gw.Get("k"); v != "v2" {
		t.Errorf("Get(k) = %q, want v2", v)
	}
}

func TestMemoryGatewayRemoveIdempotent(t *testing.T) {
	gw := NewMemoryGateway()
	mustSet(t, gw, "k", "v")

	if err := gw.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := gw.Remove("k"); err != nil {
		t.Errorf("second Remove() error = %v, want no-op", err)
	}
	if _, ok, _ := gw.Get("k"); ok {
		t.Error("key should be gone after Remove")
	}
}

func TestMemoryGatewayKeysSorted(t *testing.T) {
	gw := NewMemoryGateway()
	mustSet(t, gw, "b", "2")
	mustSet(t, gw, "a", "1")
	mustSet(t, gw, "c", "3")

	keys, err := gw.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v, want sorted [a b c]", keys)
	}
}
