package session

import (
	"telegram-shop-bot/internal/client"
	"time"
)

// Window is an ordered product list with a page cursor, one product shown
// per page. A new browse or search replaces the previous window wholesale.
type Window struct {
	Products []client.Product
	Page     int
}

type windowEntry struct {
	window  Window
	touched time.Time
}

func (s *Store) SetBrowse(userID int64, products []client.Product) {
	s.setWindow(s.browse, userID, products)
}

func (s *Store) Browse(userID int64) (Window, bool) {
	return s.getWindow(s.browse, userID)
}

// MoveBrowse moves the browse cursor. Out-of-range pages are ignored and
// the current window is returned unchanged with ok=false.
func (s *Store) MoveBrowse(userID int64, page int) (Window, bool) {
	return s.moveWindow(s.browse, userID, page)
}

func (s *Store) ClearBrowse(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.browse, userID)
}

func (s *Store) SetSearch(userID int64, products []client.Product) {
	s.setWindow(s.search, userID, products)
}

func (s *Store) Search(userID int64) (Window, bool) {
	return s.getWindow(s.search, userID)
}

func (s *Store) MoveSearch(userID int64, page int) (Window, bool) {
	return s.moveWindow(s.search, userID, page)
}

func (s *Store) setWindow(m map[int64]*windowEntry, userID int64, products []client.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m[userID] = &windowEntry{
		window:  Window{Products: products},
		touched: time.Now(),
	}
}

func (s *Store) getWindow(m map[int64]*windowEntry, userID int64) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := m[userID]
	if !ok {
		return Window{}, false
	}
	if time.Since(entry.touched) > s.ttl {
		delete(m, userID)
		return Window{}, false
	}
	return entry.window, true
}

func (s *Store) moveWindow(m map[int64]*windowEntry, userID int64, page int) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := m[userID]
	if !ok {
		return Window{}, false
	}
	if time.Since(entry.touched) > s.ttl {
		delete(m, userID)
		return Window{}, false
	}
	if page < 0 || page >= len(entry.window.Products) {
		// silent no-op, cursor stays put
		return entry.window, false
	}

	entry.window.Page = page
	entry.touched = time.Now()
	return entry.window, true
}
