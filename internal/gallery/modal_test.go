package gallery

import "testing"

func TestModalOpenValidatesIndex(t *testing.T) {
	var m Modal

	if m.Open(3, 3) {
		t.Error("Open(3, 3) succeeded, index out of range")
	}
	if m.Open(-1, 3) {
		t.Error("Open(-1, 3) succeeded")
	}
	if open, _ := m.State(); open {
		t.Error("modal open after rejected transitions")
	}

	if !m.Open(2, 3) {
		t.Error("Open(2, 3) rejected a valid index")
	}
	if open, idx := m.State(); !open || idx != 2 {
		t.Errorf("State() = %v, %d after Open(2, 3)", open, idx)
	}
}

func TestModalNavigationClampsAtBounds(t *testing.T) {
	var m Modal
	m.Open(0, 3)

	if m.Prev() {
		t.Error("Prev at index 0 moved")
	}
	if !m.Next(3) || !m.Next(3) {
		t.Error("Next rejected in-range moves")
	}
	if m.Next(3) {
		t.Error("Next at last index moved")
	}
	if _, idx := m.State(); idx != 2 {
		t.Errorf("index = %d after navigation, want 2", idx)
	}
	if !m.Prev() {
		t.Error("Prev rejected an in-range move")
	}
}

func TestModalNavigationWhileClosedIsNoop(t *testing.T) {
	var m Modal

	if m.Next(5) || m.Prev() {
		t.Error("navigation succeeded on a closed modal")
	}
}

func TestModalCloseAndReopen(t *testing.T) {
	var m Modal
	m.Open(1, 2)
	m.Close()

	if open, _ := m.State(); open {
		t.Error("modal open after Close")
	}

	// The machine is reusable across repeated opens.
	if !m.Open(0, 2) {
		t.Error("Open after Close rejected")
	}
}

func TestModalRevalidateClampsOrCloses(t *testing.T) {
	var m Modal
	m.Open(4, 5)

	// List shrank: clamp to the new last index.
	if !m.Revalidate(2) {
		t.Error("Revalidate(2) closed a clampable modal")
	}
	if _, idx := m.State(); idx != 1 {
		t.Errorf("index = %d after Revalidate(2), want 1", idx)
	}

	// Still in range: untouched.
	m.Revalidate(5)
	if _, idx := m.State(); idx != 1 {
		t.Errorf("index = %d after in-range Revalidate, want 1", idx)
	}

	// List emptied: close.
	if m.Revalidate(0) {
		t.Error("Revalidate(0) kept the modal open")
	}
	if open, _ := m.State(); open {
		t.Error("modal open over an empty list")
	}
}
