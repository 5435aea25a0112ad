package feed

import "sort"

// Session encapsulates all state needed for a single Feed Optimizer run:
// the time window and browser height supplied at construction, the
// append-ordered story store, and the height-bucketed secondary index the
// DP selector reads from.
//
// A Session is not safe for concurrent use. It is driven by a
// single-threaded, synchronous command loop with no suspension points.
type Session struct {
	timeWindow    int
	browserHeight int

	byID    map[int]*Story
	buckets map[int][]*Story // height -> stories, score desc, id asc on ties

	nextID   int // last assigned id; next assignment is nextID+1
	oldestID int // lowest id not yet known to be pruned
}

// NewSession constructs a Feed Optimizer session with the given sliding
// time window and fixed browser height.
//
// Preconditions:
//   - timeWindow must be positive (ErrBadTimeWindow).
//   - browserHeight must be positive (ErrBadBrowserHeight).
func NewSession(timeWindow, browserHeight int) (*Session, error) {
	if timeWindow <= 0 {
		return nil, ErrBadTimeWindow
	}
	if browserHeight <= 0 {
		return nil, ErrBadBrowserHeight
	}

	return &Session{
		timeWindow:    timeWindow,
		browserHeight: browserHeight,
		byID:          make(map[int]*Story),
		buckets:       make(map[int][]*Story),
		nextID:        0,
		oldestID:      1,
	}, nil
}

// AddStory assigns the next sequential id to a new Story and inserts it
// into both the by-id map and its height bucket.
//
// Within the bucket, the new story is inserted immediately after every
// existing story of equal score (descending-score order, with ties
// resolved older-id-first). Height must lie in (0, browserHeight];
// ErrBadStoryHeight otherwise.
func (s *Session) AddStory(time, score, height int) (int, error) {
	if height <= 0 || height > s.browserHeight {
		return 0, ErrBadStoryHeight
	}

	s.nextID++
	story := &Story{ID: s.nextID, Time: time, Score: score, Height: height}
	s.byID[story.ID] = story

	bucket := s.buckets[height]
	// Find the first position whose score is strictly less than the new
	// story's score; insert there so equal-score entries keep arrival
	// (ascending id) order ahead of the new arrival.
	pos := sort.Search(len(bucket), func(i int) bool {
		return bucket[i].Score < story.Score
	})
	bucket = append(bucket, nil)
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = story
	s.buckets[height] = bucket

	return story.ID, nil
}

// Remove deletes the story with the given id from both the by-id map and
// its height bucket, removing the bucket entirely if it becomes empty.
//
// Returns ErrMissingStory if the id is not present. In normal operation
// this is only reachable from Prune on a corrupted session; callers
// outside this package may also call Remove directly to evict a specific
// story ahead of its natural expiry.
func (s *Session) Remove(storyID int) error {
	story, ok := s.byID[storyID]
	if !ok {
		return ErrMissingStory
	}
	delete(s.byID, storyID)

	bucket := s.buckets[story.Height]
	idx := -1
	for i, candidate := range bucket {
		if candidate.ID == storyID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrMissingStory
	}
	bucket = append(bucket[:idx], bucket[idx+1:]...)
	if len(bucket) == 0 {
		delete(s.buckets, story.Height)
	} else {
		s.buckets[story.Height] = bucket
	}

	return nil
}

// Prune removes every story whose time is strictly less than cutoff,
// walking ids in ascending order starting from the lowest id not yet
// known to be pruned and stopping at the first survivor.
//
// This ordering relies on story times being nondecreasing in arrival (id)
// order: once a story at oldestID survives, every higher id also
// survives, so the scan can stop early.
func (s *Session) Prune(cutoff int) error {
	for s.oldestID <= s.nextID {
		story, ok := s.byID[s.oldestID]
		if !ok {
			// Already removed out of band (e.g. via Remove); skip past it.
			s.oldestID++
			continue
		}
		if story.Time >= cutoff {
			break
		}
		if err := s.Remove(story.ID); err != nil {
			return err
		}
		s.oldestID++
	}

	return nil
}

// heights returns the distinct story heights currently populated, in
// ascending order, for deterministic DP candidate enumeration.
func (s *Session) heights() []int {
	hs := make([]int, 0, len(s.buckets))
	for h := range s.buckets {
		hs = append(hs, h)
	}
	sort.Ints(hs)

	return hs
}

// empty reports whether the store currently holds no stories.
func (s *Session) empty() bool {
	return len(s.byID) == 0
}
