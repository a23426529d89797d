package domain

// Station is one physical stop on a single line. Platforms of a multi-line
// station share a GroupID while each keeps its own ID.
//
// The numbering slots (RawNumbers) come straight from the row; the derived
// StationNumbers are filled in by the usecase layer together with the
// owning line's symbol slots.
type Station struct {
	ID              int64
	GroupID         int64
	Name            string
	NameKatakana    string
	NameRoman       *string
	NameRomanNorm   *string
	NameChinese     *string
	NameKorean      *string
	ThreeLetterCode *string
	LineID          int64
	PrefectureID    int64
	PostalCode      string
	Address         string
	Longitude       float64
	Latitude        float64
	OpenedAt        string
	ClosedAt        string
	Status          int64
	SortOrder       int64

	RawNumbers [4]string

	// Derived and attached by the usecase layer.
	StationNumbers []*StationNumber
	Line           *Line
	Lines          []*Line
	TrainType      *TrainType
	StopCondition  StopCondition
	HasTrainTypes  bool

	// Planar distance from the query point, set by coordinate search only.
	Distance *float64
}

// StationNumber is the per-slot display number of a station, e.g. "JY-20".
type StationNumber struct {
	LineSymbol      string
	LineSymbolColor string
	LineSymbolShape string
	StationNumber   string
}
