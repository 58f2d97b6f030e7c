//go:build tools

// Package webinarbooking tracks tool dependencies used by go generate.
package webinarbooking

import (
	_ "go.uber.org/mock/mockgen"
)
