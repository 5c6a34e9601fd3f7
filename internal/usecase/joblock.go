package usecase

import "sync"

// JobLocks serializes mutations per job id. The cascade reads steps, writes
// the job, then writes the client; interleaving a second mutation of the same
// job between those phases would compute client debt from a stale balance,
// so every mutating usecase path takes the job's lock for its full duration.
//
// One instance is shared by all usecases touching jobs.
type JobLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewJobLocks() *JobLocks {
	return &JobLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for jobID and returns the release func.
func (l *JobLocks) Lock(jobID string) func() {
	l.mu.Lock()
	m, ok := l.locks[jobID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[jobID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
