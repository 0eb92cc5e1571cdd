package assess

// Tier is a named difficulty configuration, most to least forgiving.
type Tier int

const (
	TierNovice Tier = iota
	TierEasy
	TierNormal
	TierHard
	TierExpert
)

func (t Tier) String() string {
	switch t {
	case TierNovice:
		return "Novice"
	case TierEasy:
		return "Easy"
	case TierNormal:
		return "Normal"
	case TierHard:
		return "Hard"
	case TierExpert:
		return "Expert"
	}
	return ""
}

var tierName = map[string]Tier{
	"Novice": TierNovice,
	"Easy":   TierEasy,
	"Normal": TierNormal,
	"Hard":   TierHard,
	"Expert": TierExpert,
}

// ParseTier maps a tier name to its Tier, defaulting to Normal for anything
// unknown.
func ParseTier(s string) Tier {
	if t, ok := tierName[s]; ok {
		return t
	}
	return TierNormal
}

// Params is one tier's decision profile. Tiers are rows in a data table, so
// adding a tier is additive data, not new branching.
type Params struct {
	WallThreshold       float64 // minimum score a wall needs to be committed
	MoveJitter          float64 // uniform noise amplitude on move scores
	WallJitter          float64 // uniform noise amplitude on wall scores
	BaseWallProbability float64 // chance of attempting a wall before the gap term
	SearchRadius        int     // Manhattan radius around the opponent for candidate anchors
}

var tierTable = map[Tier]Params{
	TierNovice: {WallThreshold: 4, MoveJitter: 8, WallJitter: 8, BaseWallProbability: 0.10, SearchRadius: 2},
	TierEasy:   {WallThreshold: 8, MoveJitter: 5, WallJitter: 5, BaseWallProbability: 0.15, SearchRadius: 3},
	TierNormal: {WallThreshold: 12, MoveJitter: 2.5, WallJitter: 2.5, BaseWallProbability: 0.20, SearchRadius: 4},
	TierHard:   {WallThreshold: 16, MoveJitter: 0, WallJitter: 0, BaseWallProbability: 0.25, SearchRadius: 5},
	TierExpert: {WallThreshold: 20, MoveJitter: 0, WallJitter: 0, BaseWallProbability: 0.30, SearchRadius: 8},
}

func ParamsFor(t Tier) Params {
	if p, c := tierTable[t]; c {
		return p
	}
	return tierTable[TierNormal]
}

// Qualifies reports whether a wall score clears the tier's commit threshold.
func (p Params) Qualifies(score float64) bool {
	return score >= p.WallThreshold
}
