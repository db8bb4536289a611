package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

var unitSuffix = []string{"M", "G", "T", "P"}

// formatMem renders a byte count in at most five cells using whole
// 1024-based units: "512K", "37M", "2G".
func formatMem(bytes float64) string {
	if bytes < 0 {
		bytes = 0
	}
	kib := uint64(bytes) / 1024
	if kib < 1024 {
		return fmt.Sprintf("%dK", kib)
	}
	v := kib / 1024
	for _, u := range unitSuffix {
		if v < 1024 {
			return fmt.Sprintf("%d%s", v, u)
		}
		v /= 1024
	}
	return "!!!!!"
}

// formatBytes renders a byte count in at most five cells, keeping as many
// significant digits as fit: "876K", "1.03M", "766M".
func formatBytes(bytes uint64) string {
	kib := bytes / 1024
	if kib < 1000 {
		return fmt.Sprintf("%dK", kib)
	}
	v := float64(kib) / 1024
	for _, u := range unitSuffix {
		switch {
		case v < 9.5:
			return fmt.Sprintf("%.2f%s", v, u)
		case v < 99.5:
			return fmt.Sprintf("%.1f%s", v, u)
		case v < 999.5:
			return fmt.Sprintf("%.0f%s", v, u)
		}
		v /= 1024
	}
	return "!!!!!"
}

// formatMemDiff renders a signed memory delta: "+67K", "-2M", "0K".
func formatMemDiff(bytes float64) string {
	sign := "+"
	if bytes < 0 {
		sign = "-"
		bytes = -bytes
	}
	kib := uint64(math.Round(bytes / 1024))
	if kib == 0 {
		return "0K"
	}
	if kib < 1000 {
		return fmt.Sprintf("%s%dK", sign, kib)
	}
	v := float64(kib) / 1024
	for _, u := range unitSuffix {
		if v < 999.5 {
			return fmt.Sprintf("%s%d%s", sign, uint64(math.Round(v)), u)
		}
		v /= 1024
	}
	return sign + "!!!!"
}

// formatCPU renders a percentage as a whole number, capped to fit.
func formatCPU(pct float64) string {
	if pct > 9999 {
		return ">10K"
	}
	return fmt.Sprintf("%.0f", math.Max(pct, 0))
}

// formatCPUDiff renders a signed CPU delta: "+25", "-5", "0".
func formatCPUDiff(d float64) string {
	n := int64(math.Round(d))
	switch {
	case n == 0:
		return "0"
	case n > 9999:
		return "+!!!"
	case n < -9999:
		return "-!!!"
	case n > 0:
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// formatDuration renders an elapsed time with its two largest units:
// "23s", "2m56s", "2h2m", "4d2h".
func formatDuration(d time.Duration) string {
	sec := int64(d / time.Second)
	if sec < 0 {
		sec = 0
	}
	if sec < 60 {
		return fmt.Sprintf("%ds", sec)
	}
	m, sec := sec/60, sec%60
	if m < 60 {
		return pair(m, "m", sec, "s")
	}
	h, m := m/60, m%60
	if h < 24 {
		return pair(h, "h", m, "m")
	}
	return pair(h/24, "d", h%24, "h")
}

func pair(major int64, mu string, minor int64, nu string) string {
	if minor == 0 {
		return fmt.Sprintf("%d%s", major, mu)
	}
	return fmt.Sprintf("%d%s%d%s", major, mu, minor, nu)
}

// formatTotal renders a cumulative byte counter for the wide IO line.
func formatTotal(bytes uint64) string {
	return strings.ReplaceAll(humanize.IBytes(bytes), " ", "")
}

// fadeLeft truncates s from the left so that it fits in width display
// cells, marking the cut with an ellipsis.
func fadeLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		cw := runewidth.RuneWidth(runes[i-1])
		if w+cw > width-1 {
			break
		}
		w += cw
		i--
	}
	return ellipsis + string(runes[i:])
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
