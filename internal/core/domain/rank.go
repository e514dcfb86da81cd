package domain

// Rank is a qualitative label derived from a performance percentage.
type Rank string

const (
	RankOutstanding  Rank = "Outstanding"
	RankExcellent    Rank = "Excellent"
	RankVeryGood     Rank = "Very Good"
	RankGood         Rank = "Good"
	RankInconsistent Rank = "Inconsistent"
	RankPoor         Rank = "Poor"
	RankUnknown      Rank = "Unknown"
)

// ClassifyRank maps a percentage onto the fixed half-open intervals
// covering [0, 101). Values outside that range only appear when the store
// violated the one-check-off-per-period contract; they classify as Unknown
// instead of failing.
func ClassifyRank(percentage float64) Rank {
	switch {
	case percentage < 0 || percentage >= 101:
		return RankUnknown
	case percentage >= 100:
		return RankOutstanding
	case percentage >= 91:
		return RankExcellent
	case percentage >= 70:
		return RankVeryGood
	case percentage >= 60:
		return RankGood
	case percentage >= 40:
		return RankInconsistent
	default:
		return RankPoor
	}
}
