package model

import (
	"fmt"
	"strings"
)

// Quality selects the glyph palette used to draw graphs.
type Quality int

const (
	QualityHigh Quality = iota
	QualityLow
	QualityMedium
	qualityCount
)

var qualityNames = []string{"high", "low", "medium"}

// String returns the quality token, such as "high".
func (q Quality) String() string {
	if q < 0 || q >= qualityCount {
		return "unknown"
	}
	return qualityNames[q]
}

// Next cycles high -> low -> medium -> high.
func (q Quality) Next() Quality { return (q + 1) % qualityCount }

// ParseQuality parses "high", "medium" or "low" (case-insensitive).
func ParseQuality(s string) (Quality, error) {
	i, err := parseEnum(s, qualityNames)
	if err != nil {
		return QualityHigh, fmt.Errorf("invalid quality %q: must be one of high, medium, low", s)
	}
	return Quality(i), nil
}

// ScaleMode selects the bottom of the memory graph axis.
type ScaleMode int

const (
	ScaleMin  ScaleMode = iota // min..max of the visible window
	ScaleZero                  // 0..max of the visible window
	scaleCount
)

var scaleNames = []string{"min", "zero"}

// String returns the scale token, "zero" or "min".
func (s ScaleMode) String() string {
	if s < 0 || s >= scaleCount {
		return "unknown"
	}
	return scaleNames[s]
}

// Toggle switches zero <-> min.
func (s ScaleMode) Toggle() ScaleMode { return (s + 1) % scaleCount }

// ParseScaleMode parses "zero" or "min".
func ParseScaleMode(v string) (ScaleMode, error) {
	i, err := parseEnum(v, scaleNames)
	if err != nil {
		return ScaleMin, fmt.Errorf("invalid scale %q: must be one of zero, min", v)
	}
	return ScaleMode(i), nil
}

// TitleMode selects what is printed in a process title line.
type TitleMode int

const (
	TitleCmd TitleMode = iota
	TitlePath
	TitleName
	titleCount
)

var titleNames = []string{"cmd", "path", "name"}

// String returns the title token, such as "cmd".
func (t TitleMode) String() string {
	if t < 0 || t >= titleCount {
		return "unknown"
	}
	return titleNames[t]
}

// Next cycles cmd -> path -> name -> cmd.
func (t TitleMode) Next() TitleMode { return (t + 1) % titleCount }

// ParseTitleMode parses "cmd", "path" or "name".
func ParseTitleMode(v string) (TitleMode, error) {
	i, err := parseEnum(v, titleNames)
	if err != nil {
		return TitleCmd, fmt.Errorf("invalid title %q: must be one of cmd, path, name", v)
	}
	return TitleMode(i), nil
}

// Title picks the text shown for p in this mode. Falls back to the
// process name when the preferred field is empty.
func (t TitleMode) Title(p ProcInfo) string {
	var s string
	switch t {
	case TitleCmd:
		s = p.Cmdline
	case TitlePath:
		s = p.Exe
	}
	if s == "" {
		return p.Name
	}
	return s
}

// PackMode controls how CPU and MEM graphs of one process are arranged.
type PackMode int

const (
	PackAuto PackMode = iota
	PackSide
	PackStack
	packCount
)

var packNames = []string{"auto", "side", "stack"}

// String returns the layout token, such as "auto".
func (p PackMode) String() string {
	if p < 0 || p >= packCount {
		return "unknown"
	}
	return packNames[p]
}

// ParsePackMode parses "auto", "side" or "stack".
func ParsePackMode(v string) (PackMode, error) {
	i, err := parseEnum(v, packNames)
	if err != nil {
		return PackAuto, fmt.Errorf("invalid layout %q: must be one of auto, side, stack", v)
	}
	return PackMode(i), nil
}

func parseEnum(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", s)
}
