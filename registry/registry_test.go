package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mimir/rc"
)

type session struct {
	closes *int
	name   string
}

func (s *session) Finalize() {
	if s.closes != nil {
		*s.closes++
	}
}

func TestGetOrCreateSharesLiveObject(t *testing.T) {
	reg := New[string, session]()
	closes, built := 0, 0

	create := func() (rc.Shared[session], error) {
		built++
		return rc.Make(session{closes: &closes, name: "alpha"}), nil
	}

	a, err := reg.GetOrCreate("alpha", create)
	require.NoError(t, err)
	b, err := reg.GetOrCreate("alpha", create)
	require.NoError(t, err)

	assert.Equal(t, 1, built, "second call should reuse the live object")
	assert.True(t, a == b, "both handles should name the same object")
	assert.Equal(t, 2, a.UseCount())
	assert.Equal(t, 1, reg.Len())

	b.Release()
	a.Release()
	assert.Equal(t, 1, closes, "object should be destroyed at last release")
	assert.Equal(t, 1, reg.Len(), "expired entry lingers until swept")
}

func TestGetOrCreateRebuildsAfterExpiry(t *testing.T) {
	reg := New[string, session]()
	closes, built := 0, 0

	create := func() (rc.Shared[session], error) {
		built++
		return rc.Make(session{closes: &closes}), nil
	}

	a, err := reg.GetOrCreate("k", create)
	require.NoError(t, err)
	a.Release()

	b, err := reg.GetOrCreate("k", create)
	require.NoError(t, err)
	defer b.Release()

	assert.Equal(t, 2, built, "expired entry should trigger a rebuild")
	assert.True(t, b.Valid())
	assert.Equal(t, 1, b.UseCount())
	assert.Equal(t, 1, reg.Len())
}

func TestGetOrCreateErrorLeavesNoEntry(t *testing.T) {
	reg := New[string, session]()
	boom := errors.New("backing store unavailable")

	s, err := reg.GetOrCreate("k", func() (rc.Shared[session], error) {
		return rc.Shared[session]{}, boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, s.Valid())
	assert.Equal(t, 0, reg.Len())
}

func TestLookupDoesNotCreate(t *testing.T) {
	reg := New[string, session]()

	_, ok := reg.Lookup("missing")
	assert.False(t, ok)

	a, err := reg.GetOrCreate("k", func() (rc.Shared[session], error) {
		return rc.Make(session{}), nil
	})
	require.NoError(t, err)

	got, ok := reg.Lookup("k")
	require.True(t, ok)
	assert.True(t, got == a)
	got.Release()

	a.Release()
	_, ok = reg.Lookup("k")
	assert.False(t, ok, "expired entry should not lock")
}

func TestRemoveKeepsCallerHandles(t *testing.T) {
	reg := New[string, session]()
	closes := 0

	a, err := reg.GetOrCreate("k", func() (rc.Shared[session], error) {
		return rc.Make(session{closes: &closes}), nil
	})
	require.NoError(t, err)

	require.True(t, reg.Remove("k"))
	assert.False(t, reg.Remove("k"), "second remove should find nothing")
	assert.Equal(t, 0, reg.Len())

	assert.True(t, a.Valid(), "removal must not invalidate held handles")
	assert.Equal(t, 0, closes)
	a.Release()
	assert.Equal(t, 1, closes)
}

func TestSweepDropsOnlyExpired(t *testing.T) {
	reg := New[string, session]()

	live, err := reg.GetOrCreate("live", func() (rc.Shared[session], error) {
		return rc.Make(session{}), nil
	})
	require.NoError(t, err)
	defer live.Release()

	for _, k := range []string{"dead1", "dead2"} {
		s, err := reg.GetOrCreate(k, func() (rc.Shared[session], error) {
			return rc.Make(session{}), nil
		})
		require.NoError(t, err)
		s.Release()
	}

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, 2, reg.Sweep())
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 0, reg.Sweep(), "nothing left to sweep")
}

func TestClearReleasesEverything(t *testing.T) {
	before := rc.Live()
	reg := New[int, session]()

	held := make([]rc.Shared[session], 0, 3)
	for i := 0; i < 3; i++ {
		s, err := reg.GetOrCreate(i, func() (rc.Shared[session], error) {
			return rc.Make(session{}), nil
		})
		require.NoError(t, err)
		held = append(held, s)
	}
	held[2].Release()
	held = held[:2]

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
	for i := range held {
		held[i].Release()
	}
	assert.Equal(t, before, rc.Live(), "all blocks and objects reclaimed")
}
