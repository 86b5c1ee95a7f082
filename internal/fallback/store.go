package fallback

import (
	gormModels "framework4future/portal/internal/models/gorm"
)

// Store holds the in-memory stand-ins for every live table. It is built per
// process (or per test) and handed to the data-access services.
type Store struct {
	Events     *Collection[gormModels.Event]
	Blogs      *Collection[gormModels.Blog]
	Categories *Collection[gormModels.BlogCategory]
	Members    *Collection[gormModels.Member]
	Hours      *Collection[gormModels.VolunteeringHours]
	Team       *Collection[gormModels.TeamMember]
}

// New returns a store seeded with the demo records.
func New() *Store {
	s := Empty()
	seed(s)
	return s
}

// Empty returns a store with no records.
func Empty() *Store {
	return &Store{
		Events:     NewCollection(func(e *gormModels.Event) string { return e.ID }),
		Blogs:      NewCollection(func(b *gormModels.Blog) string { return b.ID }),
		Categories: NewCollection(func(c *gormModels.BlogCategory) string { return c.ID }),
		Members:    NewCollection(func(m *gormModels.Member) string { return m.ID }),
		Hours:      NewCollection(func(h *gormModels.VolunteeringHours) string { return h.ID }),
		Team:       NewCollection(func(t *gormModels.TeamMember) string { return t.ID }),
	}
}
