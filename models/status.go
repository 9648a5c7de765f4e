package models

// Status represents the health of a monitored service.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus normalises a raw summary status string to Status.
// Anything other than "up", including an absent value, is down.
func ParseStatus(raw string) Status {
	if raw == "up" {
		return StatusUp
	}
	return StatusDown
}
