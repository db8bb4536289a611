package util

import (
	"testing"
	"time"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr uint64
		want       uint64
	}{
		{"growth", 100, 250, 150},
		{"flat", 42, 42, 0},
		{"counter reset", 500, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.prev, tt.curr); got != tt.want {
				t.Errorf("Delta(%d, %d) = %d, want %d", tt.prev, tt.curr, got, tt.want)
			}
		})
	}
}

func TestCPUPct(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr float64
		dt         time.Duration
		want       float64
	}{
		{"half core", 10, 10.5, time.Second, 50},
		{"two cores", 1, 5, 2 * time.Second, 200},
		{"idle", 3, 3, time.Second, 0},
		{"went backwards", 5, 4, time.Second, 0},
		{"zero dt", 1, 2, 0, 0},
		{"quarter second tick", 0, 0.125, 250 * time.Millisecond, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CPUPct(tt.prev, tt.curr, tt.dt)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("CPUPct(%v, %v, %v) = %v, want %v", tt.prev, tt.curr, tt.dt, got, tt.want)
			}
		})
	}
}
