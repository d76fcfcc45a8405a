package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-shop-bot/internal/client"
)

func TestStore_FlowLifecycle(t *testing.T) {
	s := NewStore(time.Minute)

	_, ok := s.Flow(1)
	assert.False(t, ok, "no flow before Begin")

	state := s.Begin(1, FlowRegistration, StepFirstName)
	require.Equal(t, FlowRegistration, state.Flow)
	require.Equal(t, StepFirstName, state.Step)

	state.Registration.FirstName = "Ada"
	state.Step = StepLastName
	s.Update(1, state)

	got, ok := s.Flow(1)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Registration.FirstName)
	assert.Equal(t, StepLastName, got.Step)

	s.End(1)
	_, ok = s.Flow(1)
	assert.False(t, ok, "End discards the flow")
}

func TestStore_BeginReplacesPriorFlow(t *testing.T) {
	s := NewStore(time.Minute)

	state := s.Begin(7, FlowCheckout, StepPromo)
	state.Checkout.TotalAmount = 99
	s.Update(7, state)

	// starting a new flow abandons the old one and its partial input
	fresh := s.Begin(7, FlowSearch, StepQuery)
	assert.Equal(t, FlowSearch, fresh.Flow)

	got, ok := s.Flow(7)
	require.True(t, ok)
	assert.Equal(t, FlowSearch, got.Flow)
	assert.Zero(t, got.Checkout.TotalAmount)
}

func TestStore_FlowExpires(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.Begin(1, FlowSearch, StepQuery)
	time.Sleep(25 * time.Millisecond)

	_, ok := s.Flow(1)
	assert.False(t, ok, "expired flow is gone")
}

func TestStore_Sweep(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.Begin(1, FlowSearch, StepQuery)
	s.SetBrowse(1, []client.Product{{ID: 1}})
	time.Sleep(25 * time.Millisecond)
	s.sweep()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.flows)
	assert.Empty(t, s.browse)
}

func products(n int) []client.Product {
	out := make([]client.Product, n)
	for i := range out {
		out[i] = client.Product{ID: int64(i + 1)}
	}
	return out
}

func TestStore_WindowPagination(t *testing.T) {
	s := NewStore(time.Minute)
	s.SetBrowse(1, products(3))

	w, ok := s.Browse(1)
	require.True(t, ok)
	assert.Equal(t, 0, w.Page)

	w, ok = s.MoveBrowse(1, 2)
	require.True(t, ok)
	assert.Equal(t, 2, w.Page)

	// out-of-range moves are silent no-ops leaving the cursor unchanged
	w, ok = s.MoveBrowse(1, 3)
	assert.False(t, ok)
	assert.Equal(t, 2, w.Page)

	w, ok = s.MoveBrowse(1, -1)
	assert.False(t, ok)
	assert.Equal(t, 2, w.Page)
}

func TestStore_WindowReplacedWholesale(t *testing.T) {
	s := NewStore(time.Minute)

	s.SetSearch(1, products(5))
	_, ok := s.MoveSearch(1, 4)
	require.True(t, ok)

	// a new search resets both list and cursor
	s.SetSearch(1, products(2))
	w, ok := s.Search(1)
	require.True(t, ok)
	assert.Equal(t, 0, w.Page)
	assert.Len(t, w.Products, 2)
}

func TestStore_WindowsPerUser(t *testing.T) {
	s := NewStore(time.Minute)

	s.SetBrowse(1, products(2))
	_, ok := s.Browse(2)
	assert.False(t, ok, "windows are per user")
}
