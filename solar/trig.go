package solar

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func toRadians(deg float64) float64 {
	return deg * degToRad
}

func toDegrees(rad float64) float64 {
	return rad * radToDeg
}

func sinDeg(deg float64) float64 {
	return math.Sin(toRadians(deg))
}

func cosDeg(deg float64) float64 {
	return math.Cos(toRadians(deg))
}

func tanDeg(deg float64) float64 {
	return math.Tan(toRadians(deg))
}

func asinDeg(x float64) float64 {
	return toDegrees(math.Asin(x))
}

func acosDeg(x float64) float64 {
	return toDegrees(math.Acos(x))
}
