package exchange

// Timeframe is an enum that represents the various candlestick intervals that can be retrieved from
// an exchange's chart endpoints.
type Timeframe int

const (
	OneMinute Timeframe = iota
	FiveMinutes
	FifteenMinutes
	ThirtyMinutes
	OneHour
	ThreeHours
	SixHours
	TwelveHours
	OneDay
	SevenDays
	FourteenDays
	OneMonth
)

var timeframes = [...]string{"1m", "5m", "15m", "30m", "1h", "3h", "6h", "12h", "1D", "7D", "14D", "1M"}

func (o Timeframe) String() string {
	if o < 0 || int(o) >= len(timeframes) {
		return ""
	}

	return timeframes[o]
}

// ParseTimeframe returns the timeframe whose wire value is the provided string and a true sentinel,
// or a false sentinel if no such timeframe exists. Note that the wire values are case sensitive ("1m"
// is one minute while "1M" is one month).
func ParseTimeframe(s string) (Timeframe, bool) {
	for i, v := range timeframes {
		if v == s {
			return Timeframe(i), true
		}
	}

	return 0, false
}
