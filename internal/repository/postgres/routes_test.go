package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 {
	return &v
}

func strp(v string) *string {
	return &v
}

func stopRow(stationCd, groupCd, lineCd int64) stationRow {
	return stationRow{
		StationCd:  stationCd,
		StationGCd: groupCd,
		LineCd:     lineCd,
	}
}

func throughStopRow(stationCd, groupCd, lineCd, lineGroupCd, sstID int64) stationRow {
	row := stopRow(stationCd, groupCd, lineCd)
	row.SstID = int64p(sstID)
	row.TypeCd = int64p(1)
	row.LineGroupCd = int64p(lineGroupCd)
	row.Pass = int64p(0)
	row.TypeName = strp("快特")
	return row
}

func TestAssembleRoutes_DirectLine(t *testing.T) {
	rows := []stationRow{
		stopRow(1130201, 1130201, 11302),
		stopRow(1130205, 1130205, 11302),
		stopRow(1130208, 1130208, 11302),
	}

	routes := assembleRoutes(rows, 1130201, 1130208, nil)

	assert.Len(t, routes, 1)
	assert.Equal(t, int64(11302), routes[0].ID)
	assert.Len(t, routes[0].Stops, 3)
	assert.Nil(t, routes[0].TrainType)
	// Stop order follows query order.
	assert.Equal(t, int64(1130201), routes[0].Stops[0].ID)
	assert.Equal(t, int64(1130208), routes[0].Stops[2].ID)
}

func TestAssembleRoutes_ThroughRunningCarriesTrainType(t *testing.T) {
	rows := []stationRow{
		throughStopRow(9993201, 100, 99931, 301, 1),
		throughStopRow(9993205, 200, 99932, 301, 2),
	}

	routes := assembleRoutes(rows, 100, 200, nil)

	assert.Len(t, routes, 1)
	assert.Equal(t, int64(301), routes[0].ID)
	if assert.NotNil(t, routes[0].TrainType) {
		assert.Equal(t, "快特", routes[0].TrainType.Name)
	}
}

func TestAssembleRoutes_DiscardsTangentialGroups(t *testing.T) {
	rows := []stationRow{
		// Touches the origin group.
		throughStopRow(1, 100, 10, 301, 1),
		// A group whose stops serve neither endpoint.
		throughStopRow(2, 900, 20, 302, 2),
		throughStopRow(3, 901, 20, 302, 3),
	}

	routes := assembleRoutes(rows, 100, 200, nil)

	assert.Len(t, routes, 1)
	assert.Equal(t, int64(301), routes[0].ID)
}

func TestAssembleRoutes_OrderedByKey(t *testing.T) {
	rows := []stationRow{
		throughStopRow(1, 100, 10, 302, 1),
		throughStopRow(2, 100, 11, 301, 2),
		stopRow(3, 200, 7),
	}

	routes := assembleRoutes(rows, 100, 200, nil)

	assert.Len(t, routes, 3)
	assert.Equal(t, int64(7), routes[0].ID)
	assert.Equal(t, int64(301), routes[1].ID)
	assert.Equal(t, int64(302), routes[2].ID)
}

func TestAssembleRoutes_ViaLineFilter(t *testing.T) {
	rows := []stationRow{
		throughStopRow(1, 100, 10, 301, 1),
		throughStopRow(2, 200, 11, 302, 2),
	}

	routes := assembleRoutes(rows, 100, 200, int64p(11))

	assert.Len(t, routes, 1)
	assert.Equal(t, int64(302), routes[0].ID)
}

func TestAssembleRoutes_Symmetry(t *testing.T) {
	rows := []stationRow{
		stopRow(1, 100, 10),
		stopRow(2, 150, 10),
		stopRow(3, 200, 10),
	}

	forward := assembleRoutes(rows, 100, 200, nil)
	backward := assembleRoutes(rows, 200, 100, nil)

	assert.Len(t, forward, 1)
	assert.Len(t, backward, 1)
	assert.Equal(t, forward[0].ID, backward[0].ID)
	assert.Equal(t, len(forward[0].Stops), len(backward[0].Stops))
}

func TestAssembleRoutes_Empty(t *testing.T) {
	assert.Empty(t, assembleRoutes(nil, 1, 2, nil))
}
