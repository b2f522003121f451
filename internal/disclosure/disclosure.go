package disclosure

// #region tier

// Tier is the coarse leakage-control level for an oracle answer. It is
// derived from the round index alone and never decreases within a game.
type Tier string

const (
	TierEarly Tier = "early"
	TierMid   Tier = "mid"
	TierLate  Tier = "late"
)

// #endregion tier

// #region tier-for

// TierFor maps a 1-based round index to its disclosure tier:
// rounds 1-2 early, 3-4 mid, 5+ late. This function is the single source of
// truth for the leakage schedule; every oracle instruction derives from it.
func TierFor(round int) Tier {
	switch {
	case round <= 2:
		return TierEarly
	case round <= 4:
		return TierMid
	default:
		return TierLate
	}
}

// #endregion tier-for

// #region instruction

// Instruction is the structured disclosure guidance attached to an oracle
// request for one tier.
type Instruction struct {
	Tier     Tier
	Guidance string
}

// Instructions maps each tier to its guidance text. Kept as an enum-keyed
// table so the schedule can be audited and tested without a live generator.
var Instructions = map[Tier]Instruction{
	TierEarly: {
		Tier: TierEarly,
		Guidance: "This is an early round. Answer as abstractly and obliquely as you can: " +
			"confirm or deny directions only, and avoid naming any concrete detail from the solution.",
	},
	TierMid: {
		Tier: TierMid,
		Guidance: "This is a mid-game round. You may be slightly more concrete than before, " +
			"but still avoid naming the key nouns of the solution; describe categories, relations, or abstract traits instead.",
	},
	TierLate: {
		Tier: TierLate,
		Guidance: "This is a late round and the players have asked many questions. " +
			"When a question comes very close you may offer a more specific hint, " +
			"but you must never recount the full solution in one answer.",
	},
}

// InstructionFor returns the guidance for the given round's tier.
func InstructionFor(round int) Instruction {
	return Instructions[TierFor(round)]
}

// #endregion instruction
