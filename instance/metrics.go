package instance

import "math"

// TSPLIB geographical constants.
const (
	geoPi     = 3.141592
	geoRadius = 6378.388
)

// metrics maps an EDGE_WEIGHT_TYPE to its TSPLIB distance function.
var metrics = map[string]func(a, b [2]float64) float64{
	"EUC_2D":  euc2D,
	"CEIL_2D": ceil2D,
	"MAN_2D":  man2D,
	"MAX_2D":  max2D,
	"ATT":     att,
	"GEO":     geo,
}

// nint rounds to the nearest integer the TSPLIB way.
func nint(x float64) float64 { return math.Floor(x + 0.5) }

func euc2D(a, b [2]float64) float64 {
	return nint(math.Hypot(a[0]-b[0], a[1]-b[1]))
}

func ceil2D(a, b [2]float64) float64 {
	return math.Ceil(math.Hypot(a[0]-b[0], a[1]-b[1]))
}

func man2D(a, b [2]float64) float64 {
	return nint(math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1]))
}

func max2D(a, b [2]float64) float64 {
	return math.Max(nint(math.Abs(a[0]-b[0])), nint(math.Abs(a[1]-b[1])))
}

// att is the pseudo-Euclidean distance of the att48/att532 instances.
func att(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	r := math.Sqrt((dx*dx + dy*dy) / 10)
	t := nint(r)
	if t < r {
		t++
	}

	return t
}

// toRadians converts a DDD.MM coordinate to radians.
func toRadians(x float64) float64 {
	deg := math.Trunc(x)
	minutes := x - deg

	return geoPi * (deg + 5*minutes/3) / 180
}

// geo is the great-circle distance in kilometers, truncated to an integer.
func geo(a, b [2]float64) float64 {
	latA, lonA := toRadians(a[0]), toRadians(a[1])
	latB, lonB := toRadians(b[0]), toRadians(b[1])
	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return math.Trunc(geoRadius*math.Acos(0.5*((1+q1)*q2-(1-q1)*q3)) + 1)
}
