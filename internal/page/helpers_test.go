package page_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sportreg/internal/domain"
)

// fakeClock fires timers only when advanced.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []fakeTimer
}

type fakeTimer struct {
	at time.Duration
	fn func()
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	c.timers = append(c.timers, fakeTimer{at: c.now + d, fn: f})
	c.mu.Unlock()
}

// Advance moves time forward and runs every timer that came due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
	var due []fakeTimer
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.at <= c.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	c.timers = kept
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// stubClient answers requests from a queue of canned replies.
type stubClient struct {
	mu          sync.Mutex
	logouts     int
	submissions []domain.FormSubmission
	replies     []reply
}

type reply struct {
	n    domain.Notification
	err  error
	gate chan struct{} // when non-nil, the reply waits for it to close
}

// next pops the next reply; callers hold s.mu.
func (s *stubClient) next() reply {
	if len(s.replies) == 0 {
		return reply{err: fmt.Errorf("stub: no reply queued")}
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r
}

func (s *stubClient) queue(replies ...reply) {
	s.mu.Lock()
	s.replies = append(s.replies, replies...)
	s.mu.Unlock()
}

func (s *stubClient) Logout(ctx context.Context) (domain.Notification, error) {
	s.mu.Lock()
	s.logouts++
	r := s.next()
	s.mu.Unlock()
	if r.gate != nil {
		<-r.gate
	}
	return r.n, r.err
}

func (s *stubClient) RegisterSport(ctx context.Context, sub domain.FormSubmission) (domain.Notification, error) {
	s.mu.Lock()
	s.submissions = append(s.submissions, sub)
	r := s.next()
	s.mu.Unlock()
	if r.gate != nil {
		<-r.gate
	}
	return r.n, r.err
}

func (s *stubClient) Logouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

func (s *stubClient) Submissions() []domain.FormSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.FormSubmission(nil), s.submissions...)
}
