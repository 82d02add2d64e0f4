package core

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// Systems is a priority-ordered system list
type Systems []System

// Add registers a system, keeping ascending priority order
func (ss *Systems) Add(s System) {
	*ss = append(*ss, s)
	list := *ss
	// Sort by priority (simple insertion)
	for i := len(list) - 1; i > 0; i-- {
		if list[i].Priority() < list[i-1].Priority() {
			list[i], list[i-1] = list[i-1], list[i]
		}
	}
}

// Update runs all systems once in order
func (ss Systems) Update(w *World, dt float64) {
	for _, s := range ss {
		s.Update(w, dt)
	}
}
