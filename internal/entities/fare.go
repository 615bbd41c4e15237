package entities

import "time"

// Money хранится в минорных единицах (копейки/центы), никогда в float.
type Money int64

// FareBreakdown computed once at delivery creation and immutable afterwards.
// Total is always Base + Distance + Margin.
type FareBreakdown struct {
	Base           Money
	Distance       Money
	Margin         Money
	Total          Money
	DistanceMeters int64
	Duration       time.Duration
}

// RouteEstimate — ответ внешнего роутинга: только дистанция и время в пути.
type RouteEstimate struct {
	DistanceMeters int64
	Duration       time.Duration
}
