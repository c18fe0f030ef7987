package shape

// Label is a text annotation attached to a game element by a user.
// Category is open ended; the store does not restrict it to a fixed set.
type Label struct {
	UUID     string `json:"uuid"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Visible  bool   `json:"visible"`
	User     string `json:"user"`
}

// NewLabel creates a hidden label with a fresh UUID.
func NewLabel(category, name, user string) Label {
	return Label{
		UUID:     NewUUID(),
		Category: category,
		Name:     name,
		User:     user,
	}
}

// Matches reports whether the label belongs to category and, when name is not
// empty, carries that name.
func (l Label) Matches(category, name string) bool {
	if l.Category != category {
		return false
	}
	return name == "" || l.Name == name
}
