package cmn

// IndexedSet a set of names that remembers the position each name was added at
type IndexedSet struct {
	values map[string]int
}

// Add an element to the set (if it doesn't exist yet). Returns the item index and false when the item was already
// in the set.
func (m *IndexedSet) Add(value string) (int, bool) {
	index, exists := m.values[value]
	if exists {
		return index, false
	}
	if m.values == nil {
		m.values = map[string]int{}
	}
	index = len(m.values)
	m.values[value] = index
	return index, true
}

// Contains checks if this set has the item informed
func (m *IndexedSet) Contains(value string) bool {
	_, contains := m.values[value]
	return contains
}
