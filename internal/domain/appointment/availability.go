package appointment

type AvailableProfessional struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SlotAvailability struct {
	Start         string                  `json:"start"`
	Professionals []AvailableProfessional `json:"professionals"`
}

// Availability maps slot start times to the professionals free at that
// time. Keys keep first-insertion order and each key's professionals keep
// the order they were added in.
type Availability struct {
	slots []SlotAvailability
	index map[string]int
}

func NewAvailability() *Availability {
	return &Availability{index: map[string]int{}}
}

func (a *Availability) Add(start TimeOfDay, p AvailableProfessional) {
	key := start.String()
	i, ok := a.index[key]
	if !ok {
		i = len(a.slots)
		a.index[key] = i
		a.slots = append(a.slots, SlotAvailability{Start: key})
	}
	a.slots[i].Professionals = append(a.slots[i].Professionals, p)
}

// Professionals returns the professionals free at start ("HH:MM"), or nil.
func (a *Availability) Professionals(start string) []AvailableProfessional {
	if i, ok := a.index[start]; ok {
		return a.slots[i].Professionals
	}
	return nil
}

func (a *Availability) Slots() []SlotAvailability {
	out := make([]SlotAvailability, len(a.slots))
	copy(out, a.slots)
	return out
}

func (a *Availability) Len() int {
	return len(a.slots)
}
