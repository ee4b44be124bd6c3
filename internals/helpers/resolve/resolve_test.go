package resolve

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeLookup struct {
	mu    sync.Mutex
	names map[Ref]string
	errs  map[Ref]error
	calls int32

	inflight    int32
	maxInflight int32
	block       chan struct{}
}

func (f *fakeLookup) LookupName(ctx context.Context, ref Ref) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	cur := atomic.AddInt32(&f.inflight, 1)
	for {
		max := atomic.LoadInt32(&f.maxInflight)
		if cur <= max || atomic.CompareAndSwapInt32(&f.maxInflight, max, cur) {
			break
		}
	}
	if f.block != nil {
		<-f.block
	}
	defer atomic.AddInt32(&f.inflight, -1)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[ref]; ok {
		return "", err
	}
	if name, ok := f.names[ref]; ok {
		return name, nil
	}
	return "", gorm.ErrRecordNotFound
}

func TestResolveAllPartialFailureIsolation(t *testing.T) {
	good1 := Ref{Kind: KindSubject, ID: uuid.New()}
	good2 := Ref{Kind: KindSubject, ID: uuid.New()}
	missing := Ref{Kind: KindSubject, ID: uuid.New()}
	failing := Ref{Kind: KindClass, ID: uuid.New()}

	fl := &fakeLookup{
		names: map[Ref]string{good1: "Maths", good2: "Physics"},
		errs:  map[Ref]error{failing: errors.New("read timeout")},
	}
	r := &Resolver{Lookup: fl}

	got := r.ResolveAll(context.Background(), []Ref{good1, good2, missing, failing})

	if len(got) != 4 {
		t.Fatalf("ResolveAll() returned %d entries, want 4", len(got))
	}
	if got[good1] != "Maths" || got[good2] != "Physics" {
		t.Errorf("good refs resolved to %q / %q", got[good1], got[good2])
	}
	if got[missing] != "Unknown Subject" {
		t.Errorf("missing subject = %q, want Unknown Subject", got[missing])
	}
	if got[failing] != "Unknown Class" {
		t.Errorf("failing class = %q, want Unknown Class", got[failing])
	}
}

func TestResolveAllDedupes(t *testing.T) {
	ref := Ref{Kind: KindLesson, ID: uuid.New()}
	fl := &fakeLookup{names: map[Ref]string{ref: "Intro"}}
	r := &Resolver{Lookup: fl}

	got := r.ResolveAll(context.Background(), []Ref{ref, ref, ref, {Kind: KindLesson}})
	if got[ref] != "Intro" {
		t.Fatalf("resolved = %q, want Intro", got[ref])
	}
	if n := atomic.LoadInt32(&fl.calls); n != 1 {
		t.Fatalf("lookup ran %d times, want 1", n)
	}
}

func TestResolveAllRunsConcurrently(t *testing.T) {
	refs := make([]Ref, 4)
	names := map[Ref]string{}
	for i := range refs {
		refs[i] = Ref{Kind: KindChapter, ID: uuid.New()}
		names[refs[i]] = "Ch"
	}
	fl := &fakeLookup{names: names, block: make(chan struct{})}
	r := &Resolver{Lookup: fl, MaxConcurrent: 4}

	done := make(chan map[Ref]string)
	go func() { done <- r.ResolveAll(context.Background(), refs) }()

	// all four lookups must be in flight together before any completes
	for atomic.LoadInt32(&fl.inflight) != 4 {
		runtime.Gosched()
	}
	close(fl.block)
	got := <-done

	if len(got) != 4 {
		t.Fatalf("ResolveAll() returned %d entries, want 4", len(got))
	}
	if max := atomic.LoadInt32(&fl.maxInflight); max != 4 {
		t.Fatalf("max in-flight lookups = %d, want 4", max)
	}
}

func TestNameFallbacks(t *testing.T) {
	id := uuid.New()
	resolved := map[Ref]string{{Kind: KindClass, ID: id}: "1A"}

	if got := Name(resolved, KindClass, &id); got != "1A" {
		t.Errorf("Name() = %q, want 1A", got)
	}
	if got := Name(resolved, KindClass, nil); got != "Unknown Class" {
		t.Errorf("Name(nil) = %q", got)
	}
	other := uuid.New()
	if got := Name(resolved, KindStudent, &other); got != "Unknown Student" {
		t.Errorf("Name(unresolved) = %q", got)
	}
}
