package gallery

import "sync"

// Modal is the detail-view state machine: Closed, or Open at an index into
// the displayed list. Invalid transitions are silent no-ops so navigation
// controls can always fire. The machine persists for the process lifetime and
// is reusable across repeated opens.
type Modal struct {
	mu    sync.Mutex
	open  bool
	index int
}

// Open transitions Closed -> Open(i) when i is a valid index into a displayed
// list of length n. Reports whether the transition happened.
func (m *Modal) Open(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	m.mu.Lock()
	m.open = true
	m.index = i
	m.mu.Unlock()
	return true
}

// Next advances to index+1 when in range; no-op at the upper bound or when
// closed.
func (m *Modal) Next(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || m.index+1 >= n {
		return false
	}
	m.index++
	return true
}

// Prev moves to index-1 when in range; no-op at zero or when closed.
func (m *Modal) Prev() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || m.index == 0 {
		return false
	}
	m.index--
	return true
}

// Close transitions to Closed from any state.
func (m *Modal) Close() {
	m.mu.Lock()
	m.open = false
	m.index = 0
	m.mu.Unlock()
}

// State returns the current state: open flag and index (meaningful only while
// open).
func (m *Modal) State() (open bool, index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open, m.index
}

// Revalidate re-checks the index against a rebuilt displayed list of length
// n: the index is clamped into range, and the modal closes when the list
// became empty. Reports whether the modal is still open.
func (m *Modal) Revalidate(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return false
	}
	if n == 0 {
		m.open = false
		m.index = 0
		return false
	}
	if m.index >= n {
		m.index = n - 1
	}
	return true
}
