package rc

import (
	"errors"
	"testing"
)

func TestWeakObservesWithoutOwning(t *testing.T) {
	closes := 0
	a := Make(widget{closes: &closes})
	w := a.Downgrade()

	if w.Expired() {
		t.Fatalf("fresh observer reports expired")
	}
	if got := w.UseCount(); got != 1 {
		t.Errorf("observer UseCount = %d, want 1", got)
	}

	a.Release()
	if closes != 1 {
		t.Fatalf("observer kept the object alive: closes = %d", closes)
	}
	if !w.Expired() {
		t.Errorf("observer not expired after last release")
	}
	if got := w.UseCount(); got != 0 {
		t.Errorf("expired observer UseCount = %d, want 0", got)
	}
	if s := w.Lock(); s.Valid() || s.UseCount() != 0 {
		t.Errorf("Lock on expired observer returned a live handle")
	}

	w.Release()
}

func TestLockAddsOwnership(t *testing.T) {
	a := Make(widget{n: 4})
	w := a.Downgrade()

	s := w.Lock()
	if !s.Valid() || s.UseCount() != 2 {
		t.Fatalf("lock: valid=%v count=%d, want true/2", s.Valid(), s.UseCount())
	}
	if s != a {
		t.Errorf("locked handle does not match its origin")
	}

	s.Release()
	a.Release()
	w.Release()
}

func TestUpgradeOnLiveAndDead(t *testing.T) {
	a := Make(widget{})
	w := a.Downgrade()

	s, err := w.Upgrade()
	if err != nil {
		t.Fatalf("upgrade on live object: %v", err)
	}
	s.Release()

	a.Release()
	if _, err := w.Upgrade(); !errors.Is(err, ErrDangling) {
		t.Errorf("upgrade on dead object = %v, want ErrDangling", err)
	}
	w.Release()

	var unbound Weak[widget]
	if _, err := unbound.Upgrade(); !errors.Is(err, ErrDangling) {
		t.Errorf("upgrade on unbound observer = %v, want ErrDangling", err)
	}
}

func TestBlockOutlivesObjectUntilLastWeak(t *testing.T) {
	before := Live()
	closes := 0
	a := Make(widget{closes: &closes})
	w := a.Downgrade()

	a.Release()
	if closes != 1 {
		t.Fatalf("closes = %d, want 1", closes)
	}
	if got := Live().Blocks; got != before.Blocks+1 {
		t.Errorf("block freed while an observer is registered: blocks = %d", got)
	}
	if got := Live().Objects; got != before.Objects {
		t.Errorf("object still counted after destruction: objects = %d", got)
	}

	w.Release()
	if after := Live(); after != before {
		t.Errorf("leak after last observer: Live = %+v, was %+v", after, before)
	}
}

func TestWeakCloneMoveAssignSwap(t *testing.T) {
	before := Live()
	a := Make(widget{})
	w := a.Downgrade()

	w2 := w.Clone()
	var w3 Weak[widget]
	w3.Assign(&w2)
	w3.Assign(&w3)
	if w3.Expired() {
		t.Errorf("assigned observer expired while object lives")
	}

	w4 := w3.Move()
	if !w3.Expired() {
		t.Errorf("moved-from observer still bound")
	}

	w2.Adopt(&w4)
	if !w4.Expired() {
		t.Errorf("adopted-from observer still bound")
	}

	w2.Swap(&w)
	w.Release()
	w2.Release()
	a.Release()

	if after := Live(); after != before {
		t.Errorf("leak after observer churn: Live = %+v, was %+v", after, before)
	}
}

// holder releases its own observer from inside teardown, which forces
// the block free to happen under the release cascade's feet.
type holder struct {
	w Weak[holder]
}

func (h *holder) Finalize() {
	h.w.Release()
}

func TestFinalizerReleasingLastWeak(t *testing.T) {
	before := Live()
	s := Make(holder{})
	s.Get().w = s.Downgrade()

	s.Release()
	if after := Live(); after != before {
		t.Errorf("finalizer-driven release leaked: Live = %+v, was %+v", after, before)
	}
}
