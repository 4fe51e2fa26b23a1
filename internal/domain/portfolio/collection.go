package portfolio

// Entity is implemented by every collection element.
type Entity interface {
	Experience | Project | Education | Certification | SkillGroup
}

// EntityID reads the id field of any collection element.
func EntityID[T Entity](e T) int {
	switch v := any(e).(type) {
	case Experience:
		return v.ID
	case Project:
		return v.ID
	case Education:
		return v.ID
	case Certification:
		return v.ID
	case SkillGroup:
		return v.ID
	}
	return 0
}

// NextID allocates an id for a new element: one plus the maximum existing id,
// or 1 for an empty collection. Callers must run it inside the store's Update
// critical section so two creates cannot allocate the same id.
func NextID[T Entity](items []T) int {
	max := 0
	for _, it := range items {
		if id := EntityID(it); id > max {
			max = id
		}
	}
	return max + 1
}

// IndexOf returns the position of the element with the given id, or -1.
func IndexOf[T Entity](items []T, id int) int {
	for i, it := range items {
		if EntityID(it) == id {
			return i
		}
	}
	return -1
}
