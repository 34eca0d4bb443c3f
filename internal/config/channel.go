package config

import "fmt"

// Channel is the MaaCore release track.
type Channel int

const (
	ChannelStable Channel = iota
	ChannelBeta
	ChannelAlpha
)

// String returns the lowercase channel name used in manifest URLs and
// user-facing messages.
func (c Channel) String() string {
	switch c {
	case ChannelBeta:
		return "beta"
	case ChannelAlpha:
		return "alpha"
	default:
		return "stable"
	}
}

// ParseChannel converts a lowercase channel name to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "", "stable":
		return ChannelStable, nil
	case "beta":
		return ChannelBeta, nil
	case "alpha":
		return ChannelAlpha, nil
	default:
		return ChannelStable, fmt.Errorf("unknown channel: %q (expected stable, beta or alpha)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	parsed, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
