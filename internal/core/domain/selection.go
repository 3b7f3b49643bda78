package domain

// Selection is a set of ingredient names that keeps insertion order.
type Selection struct {
	items []string
}

func NewSelection(names ...string) Selection {
	var s Selection
	for _, n := range names {
		if !s.Contains(n) {
			s.items = append(s.items, n)
		}
	}
	return s
}

// Toggle adds name when absent and removes it when present. It reports
// whether name is selected afterwards.
func (s *Selection) Toggle(name string) bool {
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, name)
	return true
}

func (s Selection) Contains(name string) bool {
	for _, item := range s.items {
		if item == name {
			return true
		}
	}
	return false
}

func (s Selection) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s Selection) Len() int {
	return len(s.items)
}

func (s *Selection) Clear() {
	s.items = nil
}
