package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// maxFlag holds one maximum per channel. A single number applies to every
// channel.
type maxFlag struct {
	channels []string
	values   []float64
}

var _ pflag.Value = (*maxFlag)(nil)

func newMaxFlag(channels ...string) *maxFlag {
	return &maxFlag{channels: channels}
}

func (f *maxFlag) String() string {
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *maxFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != len(f.channels) {
		return fmt.Errorf("expected 1 or %d comma-separated numbers, got %d", len(f.channels), len(parts))
	}

	values := make([]float64, len(f.channels))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid maximum %q", part)
		}
		values[i] = v
	}
	if len(parts) == 1 {
		for i := range values {
			values[i] = values[0]
		}
	}

	f.values = values
	return nil
}

func (f *maxFlag) Type() string {
	return strings.Join(f.channels, ",")
}

// get returns the parsed values, or false when the flag was not given.
func (f *maxFlag) get() ([]float64, bool) {
	return f.values, f.values != nil
}
