package model

import "strings"

// Config is a two-state command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

func NewConfig(s string) Config {
	switch strings.ToLower(s) {
	case "on", "1", "true":
		return On
	}
	return Off
}

func (c Config) String() string {
	if c == On {
		return "On"
	}
	return "Off"
}
