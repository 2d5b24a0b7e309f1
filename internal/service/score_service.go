package service

import (
	"fmt"
	"math"
)

const (
	MinAnswerScore = 1
	MaxAnswerScore = 10
)

// RoundToTenth rounds to one decimal place, sending exact ties to the even
// digit: 7.25 -> 7.2, 7.75 -> 7.8.
func RoundToTenth(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// FinalScore is the arithmetic mean of the per-answer scores rounded to one
// decimal place, e.g. [8 7] -> 7.5, [10 10 9] -> 9.7.
func FinalScore(scores []int) (float64, error) {
	if len(scores) == 0 {
		return 0, fmt.Errorf("cannot average an empty score list")
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return RoundToTenth(float64(total) / float64(len(scores))), nil
}
