package domain

// TrainType is a service pattern (local, rapid, express, ...). When reached
// through a station_station_types row it carries that row's identity and
// stop condition; GroupID links the lines that through-run as one service.
type TrainType struct {
	SSTID        int64
	StationID    int64
	TypeID       int64
	GroupID      int64
	Name         string
	NameKatakana string
	NameRoman    *string
	NameChinese  *string
	NameKorean   *string
	Color        string
	Direction    int64
	Kind         int64
	Priority     int64

	StopCondition StopCondition

	// Hydrated by the usecase layer.
	Line  *Line
	Lines []*Line
}
