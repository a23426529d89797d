package domain

// Route is an ordered run of stops connecting two station groups. ID is the
// line_group_cd when the stops came through a train type, else the line_cd
// of a direct same-line connection.
type Route struct {
	ID    int64
	Stops []*Station

	// TrainType is reconstructed from any stop of a through-running
	// route; nil for direct same-line routes.
	TrainType *TrainType
}
