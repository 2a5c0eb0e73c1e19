package services

import (
	"log"
	"sync"
	"time"
)

// IdentityEvent records a provider-level session change. Diagnostic only:
// nothing reads these events to drive a transition.
type IdentityEvent struct {
	Email    string
	SignedIn bool
	At       time.Time
}

// IdentityWatcher mirrors the original auth-state listener: it observes every
// sign-in and sign-out and logs the current identity. Events are dropped
// rather than ever blocking the flow that reports them.
type IdentityWatcher struct {
	events    chan IdentityEvent
	closeOnce sync.Once
	done      chan struct{}
	logf      func(format string, args ...any)
}

func NewIdentityWatcher(logf func(format string, args ...any)) *IdentityWatcher {
	if logf == nil {
		logf = log.Printf
	}
	watcher := &IdentityWatcher{
		events: make(chan IdentityEvent, 16),
		done:   make(chan struct{}),
		logf:   logf,
	}
	go watcher.drain()
	return watcher
}

func (watcher *IdentityWatcher) SignedIn(email string) {
	watcher.notify(IdentityEvent{Email: email, SignedIn: true, At: time.Now()})
}

func (watcher *IdentityWatcher) SignedOut(email string) {
	watcher.notify(IdentityEvent{Email: email, SignedIn: false, At: time.Now()})
}

func (watcher *IdentityWatcher) Close() {
	watcher.closeOnce.Do(func() {
		close(watcher.done)
	})
}

func (watcher *IdentityWatcher) notify(event IdentityEvent) {
	if watcher == nil {
		return
	}
	select {
	case watcher.events <- event:
	default:
	}
}

func (watcher *IdentityWatcher) drain() {
	for {
		select {
		case event := <-watcher.events:
			if event.SignedIn {
				watcher.logf("identity: signed in as %s", event.Email)
			} else {
				watcher.logf("identity: signed out")
			}
		case <-watcher.done:
			return
		}
	}
}
