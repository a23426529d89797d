package domain

// StopCondition says whether (and when) a train type stops at a station.
type StopCondition int32

const (
	StopConditionAll StopCondition = iota
	StopConditionNot
	StopConditionPartial
	StopConditionWeekday
	StopConditionHoliday
	StopConditionPartialStop
)

// StopConditionFromPass maps the sst.pass column. Unknown values fall back
// to All.
func StopConditionFromPass(pass int64) StopCondition {
	switch pass {
	case 1:
		return StopConditionNot
	case 2:
		return StopConditionPartial
	case 3:
		return StopConditionWeekday
	case 4:
		return StopConditionHoliday
	case 5:
		return StopConditionPartialStop
	default:
		return StopConditionAll
	}
}
