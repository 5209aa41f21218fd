package travel

// TravelType identifies the kind of transport for a travel option.
type TravelType string

const (
	TypeFlight TravelType = "FLIGHT"
	TypeTrain  TravelType = "TRAIN"
	TypeBus    TravelType = "BUS"
)

// IsValid checks if the travel type is valid
func (t TravelType) IsValid() bool {
	switch t {
	case TypeFlight, TypeTrain, TypeBus:
		return true
	}
	return false
}

// String returns the string representation of TravelType
func (t TravelType) String() string {
	return string(t)
}

// Prefix returns the two-letter booking reference prefix for this type.
func (t TravelType) Prefix() string {
	if len(t) < 2 {
		return "XX"
	}
	return string(t[:2])
}

// Status represents the inventory status of a travel option.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
	StatusFull      Status = "FULL"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusFull:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsBookable reports whether seats may be reserved in this status.
// CANCELLED is terminal: it never transitions back to ACTIVE or FULL.
func (s Status) IsBookable() bool {
	return s == StatusActive
}
