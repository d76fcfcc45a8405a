// Package session holds per-user conversation state: the current step of a
// multi-step flow plus the partial input gathered so far, and the
// browse/search result windows. Everything lives in process memory and is
// evicted after a TTL, so a restart drops in-flight flows.
package session

import (
	"context"
	"sync"
	"time"
)

type Flow int

const (
	FlowNone Flow = iota
	FlowRegistration
	FlowCheckout
	FlowSearch
	FlowBroadcast
)

type Step int

const (
	StepNone Step = iota

	// registration
	StepFirstName
	StepLastName
	StepEmail
	StepPhone

	// checkout
	StepPromo
	StepLocation
	StepPayment

	StepQuery   // search
	StepMessage // broadcast
)

// State is one user's in-flight flow. Handlers read it, mutate the copy and
// put it back with Update; the store never hands out shared pointers.
type State struct {
	Flow Flow
	Step Step

	Registration RegistrationData
	Checkout     CheckoutData
}

type RegistrationData struct {
	Language  string
	FirstName string
	LastName  string
	Email     string
}

type CheckoutData struct {
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	Latitude       *float64
	Longitude      *float64
}

type flowEntry struct {
	state   State
	touched time.Time
}

type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	flows  map[int64]*flowEntry
	browse map[int64]*windowEntry
	search map[int64]*windowEntry
}

const DefaultTTL = 30 * time.Minute

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:    ttl,
		flows:  make(map[int64]*flowEntry),
		browse: make(map[int64]*windowEntry),
		search: make(map[int64]*windowEntry),
	}
}

// Begin starts a flow for the user, abandoning any prior incomplete one.
func (s *Store) Begin(userID int64, flow Flow, step Step) State {
	state := State{Flow: flow, Step: step}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[userID] = &flowEntry{state: state, touched: time.Now()}
	return state
}

// Flow returns the user's current flow state, or false when there is none
// or it has expired.
func (s *Store) Flow(userID int64) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.flows[userID]
	if !ok {
		return State{}, false
	}
	if time.Since(entry.touched) > s.ttl {
		delete(s.flows, userID)
		return State{}, false
	}
	return entry.state, true
}

func (s *Store) Update(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[userID] = &flowEntry{state: state, touched: time.Now()}
}

// End discards the flow and its accumulated input.
func (s *Store) End(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, userID)
}

// StartSweeper evicts stale entries in the background until ctx is done.
func (s *Store) StartSweeper(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.flows {
		if entry.touched.Before(cutoff) {
			delete(s.flows, id)
		}
	}
	for id, entry := range s.browse {
		if entry.touched.Before(cutoff) {
			delete(s.browse, id)
		}
	}
	for id, entry := range s.search {
		if entry.touched.Before(cutoff) {
			delete(s.search, id)
		}
	}
}
