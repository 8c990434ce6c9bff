package model

import "time"

type Tweet struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// Envelope wraps list responses as {"results": [...]}.
type Envelope[T any] struct {
	Results []T `json:"results"`
}

func NewEnvelope[T any](items []T) Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return Envelope[T]{Results: items}
}
