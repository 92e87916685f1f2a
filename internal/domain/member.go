package domain

// Tier is a member's membership level. It controls the pricing multiplier
// applied to the member's rentals.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierStudent  Tier = "Student"
	TierPremium  Tier = "Premium"
)

type Member struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Level     Tier     `json:"membership_level"`
	History   []string `json:"history,omitempty"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

func (m *Member) IsStudent() bool {
	return m.Level == TierStudent
}

func (m *Member) IsPremium() bool {
	return m.Level == TierPremium
}

// AddHistory appends a free-text entry to the member's history. Entries are
// append-only; nothing ever edits or removes them.
func (m *Member) AddHistory(entry string) {
	m.History = append(m.History, entry)
}
