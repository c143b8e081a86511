package stats

import "math"

// Every ratio in this package must come out finite. Zero-denominator cases
// fall back to a defined value rather than NaN/Inf: rates return 0, KDA
// returns the raw kills+assists sum.

func roundTo(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Floor(x*shift+0.5) / shift // half-up
}

// KDA computes (kills + assists) / deaths rounded to 2 decimal places.
// With zero deaths the raw kills+assists sum is substituted.
func KDA(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return roundTo(float64(kills+assists)/float64(deaths), 2)
}

// Percentage computes 100*part/total rounded to 1 decimal place, 0 when
// total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(100*float64(part)/float64(total), 1)
}

// PerGame computes total/games rounded to 1 decimal place, 0 when no games
// were played.
func PerGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return roundTo(float64(total)/float64(games), 1)
}

// ceilDiv rounds the quotient up, so partial row sets still credit a full
// unit.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
