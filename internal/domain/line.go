package domain

// SymbolSlot is one of the four raw symbol columns of a line.
type SymbolSlot struct {
	Symbol string
	Color  string
	Shape  string
}

// Line is a named service owned by exactly one company. When a line is read
// through a station group, per-group alias overrides are already applied to
// the name and colour columns.
type Line struct {
	ID              int64
	CompanyID       int64
	Name            string
	NameKatakana    string
	NameFull        string
	NameRoman       *string
	NameChinese     *string
	NameKorean      *string
	Color           string
	Type            int64
	Status          int64
	SortOrder       int64
	AverageDistance float64

	SymbolSlots [4]SymbolSlot

	// StationGroupID is the group through which this line was fetched,
	// zero when the read had no station context.
	StationGroupID int64

	// LineGroupID is set when the line was fetched through a train-type
	// group (station_station_types).
	LineGroupID int64

	// Derived and attached by the usecase layer.
	Symbols []*LineSymbol
	Company *Company

	// Transfer-station hint: the sibling station of the requested group
	// that lies on this line. Materialised one hop deep only.
	Station *Station
}

// LineSymbol is the (symbol, colour, shape) projection of a symbol slot.
type LineSymbol struct {
	Symbol string
	Color  string
	Shape  string
}
