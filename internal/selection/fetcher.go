package selection

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"assessment-service/internal/models"
)

// Fetcher pulls questions from path-scoped collections and papers over
// under-filled stores with unconstrained backfill queries. Per-collection
// fetch errors are logged and treated as zero results; the assembled pool is
// always whatever could be collected.
type Fetcher struct {
	source Source

	mu   sync.Mutex
	rand *rand.Rand
}

func NewFetcher(source Source) *Fetcher {
	return &Fetcher{
		source: source,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch returns up to count questions from one collection, optionally
// filtered by a single difficulty level. The full result set is shuffled
// client-side before slicing so repeated assessments differ.
func (f *Fetcher) Fetch(ctx context.Context, kind, name string, count int, level string) []models.Question {
	if count <= 0 {
		return nil
	}
	var (
		questions []models.Question
		err       error
	)
	if level == "" {
		questions, err = f.source.FindAny(ctx, kind, name, 0)
	} else {
		questions, err = f.source.FindByLevel(ctx, kind, name, level, 0)
	}
	if err != nil {
		log.Printf("selection: fetch from %s/%s (level=%q) failed, treating as empty: %v", kind, name, level, err)
		return nil
	}
	f.shuffle(questions)
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions
}

// FetchByLevels fetches the per-level counts for one collection, fanning the
// level queries out concurrently. If the store under-returns, one extra
// unconstrained query for twice the shortfall tops the set up, deduplicated
// by question id.
func (f *Fetcher) FetchByLevels(ctx context.Context, kind, name string, counts map[string]int) []models.Question {
	requested := 0
	for _, c := range counts {
		requested += c
	}
	if requested <= 0 {
		return nil
	}

	var (
		mu        sync.Mutex
		collected []models.Question
		wg        sync.WaitGroup
	)
	for level, count := range counts {
		if count <= 0 {
			continue
		}
		wg.Add(1)
		go func(level string, count int) {
			defer wg.Done()
			qs := f.Fetch(ctx, kind, name, count, level)
			mu.Lock()
			collected = append(collected, qs...)
			mu.Unlock()
		}(level, count)
	}
	wg.Wait()

	collected = DedupeByID(collected)
	shortfall := requested - len(collected)
	if shortfall <= 0 {
		return collected
	}

	// One unconstrained query for twice the gap, then take what is new.
	extra, err := f.source.FindAny(ctx, kind, name, int64(2*shortfall))
	if err != nil {
		log.Printf("selection: backfill fetch from %s/%s failed, treating as empty: %v", kind, name, err)
		return collected
	}
	f.shuffle(extra)
	collected = appendNew(collected, extra, shortfall)
	return collected
}

// Backfill tops a pool up to target by walking the fallback collections in
// order, pulling twice the outstanding need from each and deduplicating.
// The returned pool is hard-truncated to target.
func (f *Fetcher) Backfill(ctx context.Context, kind string, pool []models.Question, target int, fallbacks []string) ([]models.Question, int) {
	tried := 0
	for _, name := range fallbacks {
		needed := target - len(pool)
		if needed <= 0 {
			break
		}
		tried++
		extra, err := f.source.FindAny(ctx, kind, name, int64(2*needed))
		if err != nil {
			log.Printf("selection: fallback fetch from %s/%s failed, skipping: %v", kind, name, err)
			continue
		}
		f.shuffle(extra)
		pool = appendNew(pool, extra, needed)
	}
	if len(pool) > target {
		pool = pool[:target]
	}
	return pool, tried
}

// shuffle is an in-place Fisher-Yates pass. The shared rand is guarded
// because level fetches fan out across goroutines.
func (f *Fetcher) shuffle(questions []models.Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(questions) - 1; i > 0; i-- {
		j := f.rand.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}

// appendNew appends questions from extra whose ids are not yet in pool,
// stopping after limit additions.
func appendNew(pool, extra []models.Question, limit int) []models.Question {
	seen := make(map[string]bool, len(pool))
	for _, q := range pool {
		seen[q.ID] = true
	}
	added := 0
	for _, q := range extra {
		if added >= limit {
			break
		}
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		pool = append(pool, q)
		added++
	}
	return pool
}

// DedupeByID drops questions whose id was already seen, keeping first
// occurrences in order.
func DedupeByID(questions []models.Question) []models.Question {
	seen := make(map[string]bool, len(questions))
	out := questions[:0]
	for _, q := range questions {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out
}
