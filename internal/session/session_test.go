package session

import (
	"errors"
	"testing"
	"time"

	"capm-lab/internal/model"
)

func newTestStore(t *testing.T, ttl time.Duration) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(ttl)
	t.Cleanup(store.Stop)
	return store
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t, time.Minute)

	created, err := store.Create(model.DefaultParams(), "default")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated session ID")
	}
	if created.Preset != "default" {
		t.Errorf("expected preset marker default, got %q", created.Preset)
	}

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Params != model.DefaultParams() {
		t.Errorf("params mismatch: %+v", got.Params)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created-at changed between Create and Get")
	}
}

func TestGetUnknown(t *testing.T) {
	store := newTestStore(t, time.Minute)
	if _, err := store.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	store := newTestStore(t, time.Minute)
	sess, _ := store.Create(model.DefaultParams(), "default")

	got, err := store.Update(sess.ID, ParamsPatch{Beta: floatPtr(2.5)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Params.Beta != 2.5 {
		t.Errorf("expected beta 2.5, got %v", got.Params.Beta)
	}
	if got.Params.RiskFreeRate != 0.02 || got.Params.MarketReturn != 0.08 {
		t.Errorf("untouched fields changed: %+v", got.Params)
	}
	if got.Preset != "" {
		t.Errorf("expected preset marker cleared after edit, got %q", got.Preset)
	}
}

func TestUpdateZeroIsAValue(t *testing.T) {
	store := newTestStore(t, time.Minute)
	sess, _ := store.Create(model.DefaultParams(), "default")

	got, err := store.Update(sess.ID, ParamsPatch{RiskFreeRate: floatPtr(0)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Params.RiskFreeRate != 0 {
		t.Errorf("expected rf 0, got %v", got.Params.RiskFreeRate)
	}
	if got.Params.Beta != 1.0 {
		t.Errorf("beta should be untouched, got %v", got.Params.Beta)
	}
}

func TestApplyOverwritesEverything(t *testing.T) {
	store := newTestStore(t, time.Minute)
	sess, _ := store.Create(model.DefaultParams(), "default")

	// Hand-edit first so the session no longer matches any preset.
	if _, err := store.Update(sess.ID, ParamsPatch{Beta: floatPtr(2.9)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	lab3 := model.Params{RiskFreeRate: 0.01, MarketReturn: 0.05, Beta: 0.5}
	got, err := store.Apply(sess.ID, lab3, "lab3")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got.Params != lab3 {
		t.Errorf("apply did not overwrite all values: %+v", got.Params)
	}
	if got.Preset != "lab3" {
		t.Errorf("expected preset marker lab3, got %q", got.Preset)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, time.Minute)
	sess, _ := store.Create(model.DefaultParams(), "default")

	if err := store.Delete(sess.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestExpiry(t *testing.T) {
	store := newTestStore(t, 30*time.Millisecond)
	sess, _ := store.Create(model.DefaultParams(), "default")

	time.Sleep(60 * time.Millisecond)

	if _, err := store.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired session to be gone, got %v", err)
	}
	if _, err := store.Update(sess.ID, ParamsPatch{Beta: floatPtr(1)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired session to reject updates, got %v", err)
	}
}

func TestWriteRefreshesExpiry(t *testing.T) {
	store := newTestStore(t, 80*time.Millisecond)
	sess, _ := store.Create(model.DefaultParams(), "default")

	// Keep writing within the TTL; the session must stay alive past
	// the original deadline.
	for i := 0; i < 3; i++ {
		time.Sleep(50 * time.Millisecond)
		if _, err := store.Update(sess.ID, ParamsPatch{Beta: floatPtr(1.5)}); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	if _, err := store.Get(sess.ID); err != nil {
		t.Errorf("session expired despite recent writes: %v", err)
	}
}

func TestLen(t *testing.T) {
	store := newTestStore(t, time.Minute)
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
	store.Create(model.DefaultParams(), "default")
	store.Create(model.DefaultParams(), "default")
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(ParamsPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (ParamsPatch{Beta: floatPtr(0)}).IsEmpty() {
		t.Error("patch with a field should not be empty")
	}
}
