package countcache

import (
	"errors"
	"testing"
	"time"
)

func TestGetTTLBoundary(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	tests := []struct {
		name    string
		age     time.Duration
		wantOK  bool
		wantVal int64
	}{
		{name: "fresh", age: time.Second, wantOK: true, wantVal: 42},
		{name: "just inside ttl", age: ttl - time.Millisecond, wantOK: true, wantVal: 42},
		{name: "exactly ttl", age: ttl, wantOK: false},
		{name: "just past ttl", age: ttl + time.Millisecond, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.now = func() time.Time { return base }
			c.Set("school_question_count", 42)

			c.now = func() time.Time { return base.Add(tt.age) }
			v, ok := c.Get("school_question_count", ttl)
			if ok != tt.wantOK {
				t.Fatalf("Get() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && v != tt.wantVal {
				t.Fatalf("Get() = %d, want %d", v, tt.wantVal)
			}
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	c := New()
	if _, ok := c.Get("nope", time.Minute); ok {
		t.Fatal("Get() on missing key reported a hit")
	}
}

func TestExpiredEntryIsEvicted(t *testing.T) {
	base := time.Now()
	c := New()
	c.now = func() time.Time { return base }
	c.Set("k", 7)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := c.Get("k", time.Minute); ok {
		t.Fatal("expired entry reported as fresh")
	}
	// entry must be gone even if a longer TTL is asked for afterwards
	if _, ok := c.Get("k", time.Hour); ok {
		t.Fatal("expired entry was not evicted")
	}
}

func TestGetOrLoad(t *testing.T) {
	base := time.Now()
	c := New()
	c.now = func() time.Time { return base }

	calls := 0
	loader := func() (int64, error) {
		calls++
		return 99, nil
	}

	v, err := c.GetOrLoad("k", time.Minute, loader)
	if err != nil || v != 99 {
		t.Fatalf("GetOrLoad() = %d, %v", v, err)
	}
	v, err = c.GetOrLoad("k", time.Minute, loader)
	if err != nil || v != 99 {
		t.Fatalf("GetOrLoad() second call = %d, %v", v, err)
	}
	if calls != 1 {
		t.Fatalf("loader ran %d times, want 1", calls)
	}

	wantErr := errors.New("boom")
	_, err = c.GetOrLoad("other", time.Minute, func() (int64, error) { return 0, wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrLoad() error = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("other", time.Minute); ok {
		t.Fatal("failed load must not cache a value")
	}
}
