package slot

// ClaimResult is the outcome of a capacity claim. Full and not-found are
// ordinary outcomes, not errors.
type ClaimResult int

const (
	ClaimUnknown ClaimResult = iota
	Claimed
	ClaimSlotNotFound
	ClaimSlotFull
)

func (r ClaimResult) String() string {
	switch r {
	case Claimed:
		return "claimed"
	case ClaimSlotNotFound:
		return "slot_not_found"
	case ClaimSlotFull:
		return "slot_full"
	default:
		return "unknown"
	}
}
