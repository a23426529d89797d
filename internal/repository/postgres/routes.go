package postgres

import (
	"sort"

	"github.com/TrainLCD/StationAPI/internal/domain"
)

// routeKey identifies one candidate route: a train-type group when the stops
// came through station_station_types, else a single line.
type routeKey struct {
	lineGroup bool
	id        int64
}

// assembleRoutes groups raw route-stop rows by their key and discards
// tangential groups: a surviving route must contain a stop in the origin or
// destination group. Stops keep query order; routes are ordered by key.
func assembleRoutes(rows []stationRow, fromGroupID, toGroupID int64, viaLineID *int64) []*domain.Route {
	stopsByKey := make(map[routeKey][]*domain.Station)
	var keys []routeKey

	for i := range rows {
		row := &rows[i]

		key := routeKey{id: row.LineCd}
		if row.LineGroupCd != nil {
			key = routeKey{lineGroup: true, id: *row.LineGroupCd}
		}

		if _, ok := stopsByKey[key]; !ok {
			keys = append(keys, key)
		}
		stopsByKey[key] = append(stopsByKey[key], row.toDomain())
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}
		return !keys[i].lineGroup && keys[j].lineGroup
	})

	routes := make([]*domain.Route, 0, len(keys))
	for _, key := range keys {
		stops := stopsByKey[key]

		if !touchesGroup(stops, fromGroupID) && !touchesGroup(stops, toGroupID) {
			continue
		}
		if viaLineID != nil && !touchesLine(stops, *viaLineID) {
			continue
		}

		route := &domain.Route{
			ID:    key.id,
			Stops: stops,
		}
		for _, stop := range stops {
			if stop.TrainType != nil {
				route.TrainType = stop.TrainType
				break
			}
		}

		routes = append(routes, route)
	}

	return routes
}

func touchesGroup(stops []*domain.Station, groupID int64) bool {
	for _, s := range stops {
		if s.GroupID == groupID {
			return true
		}
	}
	return false
}

func touchesLine(stops []*domain.Station, lineID int64) bool {
	for _, s := range stops {
		if s.LineID == lineID {
			return true
		}
	}
	return false
}
