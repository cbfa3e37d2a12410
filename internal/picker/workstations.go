package picker

import "strconv"

// workStationCount is the number of stations on the shop floor list.
const workStationCount = 10

// WorkStations lists stations 1 through 10.
type WorkStations struct{}

func (WorkStations) Len() int { return workStationCount }

// Label returns the station number for row as text; row 0 is "1".
func (w WorkStations) Label(row int) string {
	return strconv.Itoa(w.Value(row))
}

// Value returns the station number for row.
func (WorkStations) Value(row int) int {
	return row + 1
}
