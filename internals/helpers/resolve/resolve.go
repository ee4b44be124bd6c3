// Package resolve turns reference fields (uuid pointers at another table)
// into display names for list responses. Every feature list that shows a
// class/subject/chapter/lesson/student name goes through one Resolver call
// instead of issuing its own point reads.
package resolve

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Kind string

const (
	KindSchool  Kind = "school"
	KindClass   Kind = "class"
	KindSubject Kind = "subject"
	KindChapter Kind = "chapter"
	KindLesson  Kind = "lesson"
	KindStudent Kind = "student"
)

// Ref names one reference to resolve: which collection and which id.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

// Fallback is the display value used when a referenced row is missing or
// the point read fails. One bad reference never fails the whole list.
func Fallback(k Kind) string {
	switch k {
	case KindSchool:
		return "Unknown School"
	case KindClass:
		return "Unknown Class"
	case KindSubject:
		return "Unknown Subject"
	case KindChapter:
		return "Unknown Chapter"
	case KindLesson:
		return "Unknown Lesson"
	case KindStudent:
		return "Unknown Student"
	default:
		return "Unknown"
	}
}

// NameLookup is a single point read of a display name.
type NameLookup interface {
	LookupName(ctx context.Context, ref Ref) (string, error)
}

var ErrUnknownKind = errors.New("resolve: unknown reference kind")

/* ===============================
   GORM-backed lookup
=================================*/

type tableSpec struct {
	table   string
	idCol   string
	nameCol string
}

var tableSpecs = map[Kind]tableSpec{
	KindSchool:  {"schools", "school_id", "school_name"},
	KindClass:   {"classes", "class_id", "class_name"},
	KindSubject: {"subjects", "subject_id", "subject_name"},
	KindChapter: {"chapters", "chapter_id", "chapter_name"},
	KindLesson:  {"lessons", "lesson_id", "lesson_name"},
	KindStudent: {"users", "user_id", "user_name"},
}

type GormLookup struct {
	DB *gorm.DB
}

func (g GormLookup) LookupName(ctx context.Context, ref Ref) (string, error) {
	spec, ok := tableSpecs[ref.Kind]
	if !ok {
		return "", ErrUnknownKind
	}
	var name string
	err := g.DB.WithContext(ctx).
		Table(spec.table).
		Select(spec.nameCol).
		Where(spec.idCol+" = ?", ref.ID).
		Limit(1).
		Scan(&name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}

/* ===============================
   Resolver (fan-out-and-join)
=================================*/

type Resolver struct {
	Lookup NameLookup

	// MaxConcurrent bounds the fan-out; 0 means the default of 8.
	MaxConcurrent int
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{Lookup: GormLookup{DB: db}}
}

// ResolveAll resolves every ref concurrently and joins once. Duplicate refs
// are read a single time. Missing rows and read errors degrade to the
// Fallback name for that kind; the returned map always has an entry for
// every requested ref.
func (r *Resolver) ResolveAll(ctx context.Context, refs []Ref) map[Ref]string {
	out := make(map[Ref]string, len(refs))
	if len(refs) == 0 {
		return out
	}

	// dedupe first so K rows with the same subject cost one read
	seen := make(map[Ref]struct{}, len(refs))
	uniq := make([]Ref, 0, len(refs))
	for _, ref := range refs {
		if ref.ID == uuid.Nil {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		uniq = append(uniq, ref)
	}

	limit := r.MaxConcurrent
	if limit <= 0 {
		limit = 8
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, ref := range uniq {
		ref := ref
		g.Go(func() error {
			name, err := r.Lookup.LookupName(gctx, ref)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("[WARN] resolve %s/%s: %v", ref.Kind, ref.ID, err)
				}
				name = Fallback(ref.Kind)
			}
			mu.Lock()
			out[ref] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; degraded names are already set

	return out
}

// Name is a map accessor with the same degradation rule, for refs that were
// skipped during dedupe (nil ids) or absent for any other reason.
func Name(resolved map[Ref]string, k Kind, id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return Fallback(k)
	}
	if name, ok := resolved[Ref{Kind: k, ID: *id}]; ok {
		return name
	}
	return Fallback(k)
}
