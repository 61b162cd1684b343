package entity

import "time"

// Doctor médico del hospital. Un interno tiene mentor; el mentor nunca
// puede ser a su vez interno.
type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Phone     string
	Email     string
	IsIntern  bool
	MentorID  string // vacío si no aplica
	CreatedAt time.Time
	UpdatedAt time.Time
}
