package model

// Member is a person in a household roster.
type Member struct {
	ID   string
	Name string
}
