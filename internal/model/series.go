package model

import "time"

// Point is a single observation in a time series.
type Point struct {
	Time  time.Time
	Value float64
}

// Series holds a time-indexed numeric series as returned by a data source.
// Points are ordered by strictly increasing timestamp. A Series is never
// modified after a fetcher returns it.
type Series struct {
	ID     string
	Points []Point
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Points) }

// First returns the earliest observation value.
func (s Series) First() float64 { return s.Points[0].Value }

// Last returns the latest observation value.
func (s Series) Last() float64 { return s.Points[len(s.Points)-1].Value }

// Values returns the observation values in timestamp order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s.Points))
	for i, p := range s.Points {
		vals[i] = p.Value
	}
	return vals
}
