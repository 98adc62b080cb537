package crawl

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier sizing. The Bloom filter is sized well past any realistic
// max-pages setting so its false positive rate stays negligible.
const (
	frontierExpectedURLs      = 16384
	frontierFalsePositiveRate = 0.01
)

// entry is one frontier item: a canonical URL with its BFS depth relative
// to the root it was discovered under.
type entry struct {
	url   string
	depth int
}

// Frontier is a FIFO crawl queue with Bloom-filter deduplication.
// FIFO order preserves the strict breadth-first guarantee: every depth-d URL
// leaves the queue before any depth-(d+1) URL enqueued behind it.
type Frontier struct {
	seen  *bloom.BloomFilter
	queue []entry
	head  int
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push enqueues a canonical URL at the given depth.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(url string, depth int) bool {
	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, entry{url: url, depth: depth})
	return true
}

// Pop dequeues the oldest URL. The bool result is false when the frontier
// is empty.
func (f *Frontier) Pop() (string, int, bool) {
	if f.head >= len(f.queue) {
		return "", 0, false
	}
	e := f.queue[f.head]
	f.head++

	// Reclaim the consumed prefix once it dominates the backing slice.
	if f.head > 1024 && f.head*2 > len(f.queue) {
		f.queue = append([]entry(nil), f.queue[f.head:]...)
		f.head = 0
	}

	return e.url, e.depth, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// Mark records a URL as seen without enqueueing it, used for post-redirect
// destinations that have already been fetched under another URL.
func (f *Frontier) Mark(url string) {
	f.seen.AddString(url)
}

// Seen reports whether the URL has been queued at some point.
func (f *Frontier) Seen(url string) bool {
	return f.seen.TestString(url)
}
