package sonicat

import "errors"

var (
	// ErrRateConfig rejects mutation rates that are negative or whose sum
	// leaves a negative identity probability.
	ErrRateConfig = errors.New("invalid mutation rate configuration")

	// ErrDepthConfig rejects a non-positive average depth or read length.
	ErrDepthConfig = errors.New("invalid depth configuration")
)
