package scheduler

import "time"

// TriggerKind tags a notification trigger.
type TriggerKind int

// Trigger kinds.
const (
	TriggerMorning TriggerKind = iota
	TriggerNight
	TriggerClassReminder
)

// triggerKey identifies one occurrence of a trigger: the kind, the class for
// reminders, and the calendar minute it belongs to.
type triggerKey struct {
	kind    TriggerKind
	classID string
	date    string
	clock   string
}

// firedSet remembers fired triggers and forgets them after retention.
type firedSet struct {
	retention time.Duration
	seen      map[triggerKey]time.Time
}

func newFiredSet(retention time.Duration) *firedSet {
	return &firedSet{
		retention: retention,
		seen:      map[triggerKey]time.Time{},
	}
}

// markOnce records key and reports true the first time it is seen.
func (f *firedSet) markOnce(key triggerKey, now time.Time) bool {
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = now
	return true
}

// prune drops records older than retention.
func (f *firedSet) prune(now time.Time) {
	cutoff := now.Add(-f.retention)
	for key, at := range f.seen {
		if at.Before(cutoff) {
			delete(f.seen, key)
		}
	}
}

func (f *firedSet) len() int {
	return len(f.seen)
}
