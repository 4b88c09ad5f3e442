// Package dailyset selects the reproducible question set shown to every user
// on a given calendar date.
//
// Selection is a pure function of (date, pool contents, size, per-topic cap):
// there is no ambient random source, so any process on any host computes the
// same set for the same day.
package dailyset

import (
	"errors"
	"sort"
	"time"
)

// ErrPoolEmpty is returned when there are no questions to select from.
var ErrPoolEmpty = errors.New("dailyset: question pool is empty")

// Strategy names a selection policy.
type Strategy string

const (
	// StrategyGlobal shuffles the whole pool once and caps each topic while
	// walking it.
	StrategyGlobal Strategy = "global"
	// StrategyPerTopic shuffles each topic with its own seed, takes up to the
	// cap from each, then shuffles the union.
	StrategyPerTopic Strategy = "per_topic"
)

// QuestionRef is a candidate question tagged with its topic.
type QuestionRef struct {
	ID      string
	TopicID string
}

// Options configures a generation run.
type Options struct {
	RequestedSize int
	MaxPerTopic   int
	Strategy      Strategy
}

// Generate returns the ordered question IDs for date.
// Fewer than RequestedSize IDs are returned when the pool cannot satisfy the
// per-topic cap; that is not an error.
func Generate(date time.Time, pool []QuestionRef, opts Options) ([]string, error) {
	if len(pool) == 0 {
		return nil, ErrPoolEmpty
	}

	refs := canonicalPool(pool)
	seed := Seed(date)

	if opts.Strategy == StrategyPerTopic {
		return selectPerTopic(refs, seed, opts), nil
	}
	return selectGlobal(refs, seed, opts), nil
}

func selectGlobal(refs []QuestionRef, seed uint32, opts Options) []string {
	ids := make([]string, 0, max(0, min(opts.RequestedSize, len(refs))))
	perTopic := make(map[string]int)

	for _, ref := range Shuffle(refs, seed) {
		if len(ids) >= opts.RequestedSize {
			break
		}
		if perTopic[ref.TopicID] >= opts.MaxPerTopic {
			continue
		}
		perTopic[ref.TopicID]++
		ids = append(ids, ref.ID)
	}
	return ids
}

func selectPerTopic(refs []QuestionRef, seed uint32, opts Options) []string {
	byTopic := make(map[string][]QuestionRef)
	topics := make([]string, 0)
	for _, ref := range refs {
		if _, ok := byTopic[ref.TopicID]; !ok {
			topics = append(topics, ref.TopicID)
		}
		byTopic[ref.TopicID] = append(byTopic[ref.TopicID], ref)
	}
	sort.Strings(topics)

	picked := make([]string, 0)
	for _, topic := range topics {
		shuffled := Shuffle(byTopic[topic], TopicSeed(seed, topic))
		for _, ref := range shuffled[:max(0, min(opts.MaxPerTopic, len(shuffled)))] {
			picked = append(picked, ref.ID)
		}
	}

	ids := Shuffle(picked, seed)
	if len(ids) > opts.RequestedSize {
		ids = ids[:max(opts.RequestedSize, 0)]
	}
	return ids
}

// canonicalPool drops duplicate IDs and orders the pool by ID so the result
// depends on the pool contents rather than on how the caller listed them.
func canonicalPool(pool []QuestionRef) []QuestionRef {
	seen := make(map[string]struct{}, len(pool))
	refs := make([]QuestionRef, 0, len(pool))
	for _, ref := range pool {
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs
}
