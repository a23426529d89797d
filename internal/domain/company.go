package domain

// Company is a railway operator.
type Company struct {
	ID               int64
	RailroadID       int64
	Name             string
	NameShort        string
	NameKatakana     string
	NameFull         string
	NameEnglishShort string
	NameEnglishFull  string
	URL              *string
	Type             int64
	Status           int64
	SortOrder        int64
}
