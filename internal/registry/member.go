package registry

import (
	"math/rand"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/storage"
)

// Member IDs are 4-digit and human-presentable, matching the membership cards
// the business hands out.
const (
	memberIDMin = 1000
	memberIDMax = 9999

	// After this many random draws we switch to a linear scan so ID
	// generation has a hard upper bound even when the space is nearly full.
	randomDrawBudget = 64
)

// MemberRegistry owns the member collection. It loads from storage at
// construction and writes the full collection back after every mutation. A
// save failure is logged and returned, but the in-memory mutation stands; the
// process keeps running ahead of disk rather than losing the operator's edit.
type MemberRegistry struct {
	store   storage.Storage
	members []domain.Member
	usedIDs map[int]bool
}

func NewMemberRegistry(store storage.Storage) *MemberRegistry {
	r := &MemberRegistry{
		store:   store,
		usedIDs: make(map[int]bool),
	}

	members, err := store.LoadMembers()
	if err != nil {
		logger.WithRegistry("members").Error("Failed to load members, starting empty", "error", err)
		members = []domain.Member{}
	}
	r.members = members

	for _, m := range r.members {
		r.usedIDs[m.ID] = true
	}

	return r
}

// UniqueID reserves and returns a member ID no other member holds. IDs stay
// reserved for the process lifetime even after the member is removed, so a
// removed member's ID is never handed out again within one session.
func (r *MemberRegistry) UniqueID() (int, error) {
	span := memberIDMax - memberIDMin + 1
	if len(r.usedIDs) >= span {
		return 0, ErrIDSpaceExhausted
	}

	for i := 0; i < randomDrawBudget; i++ {
		id := memberIDMin + rand.Intn(span)
		if !r.usedIDs[id] {
			r.usedIDs[id] = true
			return id, nil
		}
	}

	// Random draws kept colliding; take the first free slot.
	for id := memberIDMin; id <= memberIDMax; id++ {
		if !r.usedIDs[id] {
			r.usedIDs[id] = true
			return id, nil
		}
	}
	return 0, ErrIDSpaceExhausted
}

// IDInUse reports whether an ID is reserved.
func (r *MemberRegistry) IDInUse(id int) bool {
	return r.usedIDs[id]
}

// All returns the member collection in insertion order.
func (r *MemberRegistry) All() []domain.Member {
	return append([]domain.Member{}, r.members...)
}

// FindByID returns the member with the given ID, or nil.
func (r *MemberRegistry) FindByID(id int) *domain.Member {
	for i := range r.members {
		if r.members[i].ID == id {
			return &r.members[i]
		}
	}
	return nil
}

// Add appends a member and persists the collection. The member's ID is marked
// used whether or not it came from UniqueID.
func (r *MemberRegistry) Add(member domain.Member) error {
	r.members = append(r.members, member)
	r.usedIDs[member.ID] = true
	return r.save()
}

// Update replaces the stored member with the same ID and persists.
func (r *MemberRegistry) Update(member domain.Member) error {
	for i := range r.members {
		if r.members[i].ID == member.ID {
			r.members[i] = member
			return r.save()
		}
	}
	return ErrNotFound
}

// Remove deletes the member with the given ID and persists. The ID stays
// reserved.
func (r *MemberRegistry) Remove(id int) error {
	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return r.save()
		}
	}
	return ErrNotFound
}

func (r *MemberRegistry) save() error {
	if err := r.store.SaveMembers(r.members); err != nil {
		logger.WithRegistry("members").Error("Failed to save members, in-memory state is ahead of disk", "error", err)
		return err
	}
	return nil
}
