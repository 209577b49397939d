package model

import "errors"

var (
	ErrBadTopicNum    = errors.New("model: number of topics must be at least 1")
	ErrBadAlpha       = errors.New("model: alpha must be positive")
	ErrBadBeta        = errors.New("model: beta must be positive")
	ErrBadIteration   = errors.New("model: number of iterations must not be negative")
	ErrNotRegistered  = errors.New("model: not registered")
	ErrCountUnderflow = errors.New("model: count dropped below smoothing floor")
	ErrInvariant      = errors.New("model: count invariant violated")
)

// slack allowed when comparing a decremented cell to its floor
const floorTol = 1e-6
