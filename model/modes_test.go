package model

import "testing"

func TestTitleModeCycle(t *testing.T) {
	for _, start := range []TitleMode{TitleCmd, TitlePath, TitleName} {
		m := start.Next().Next().Next()
		if m != start {
			t.Errorf("three cycles from %v ended at %v", start, m)
		}
	}
	if TitleCmd.Next() != TitlePath || TitlePath.Next() != TitleName || TitleName.Next() != TitleCmd {
		t.Error("title order must be cmd -> path -> name -> cmd")
	}
}

func TestScaleModeToggle(t *testing.T) {
	if ScaleZero.Toggle() != ScaleMin || ScaleMin.Toggle() != ScaleZero {
		t.Error("toggle must switch zero <-> min")
	}
	if ScaleZero.Toggle().Toggle() != ScaleZero {
		t.Error("double toggle must restore zero")
	}
}

func TestQualityCycle(t *testing.T) {
	q := QualityHigh
	seen := map[Quality]bool{}
	for i := 0; i < 3; i++ {
		seen[q] = true
		q = q.Next()
	}
	if q != QualityHigh || len(seen) != 3 {
		t.Errorf("quality cycle broken: ended at %v, visited %d", q, len(seen))
	}
}

func TestParseModes(t *testing.T) {
	if q, err := ParseQuality(" Medium "); err != nil || q != QualityMedium {
		t.Errorf("ParseQuality: %v %v", q, err)
	}
	if _, err := ParseQuality("best"); err == nil {
		t.Error("ParseQuality(best): expected error")
	}
	if s, err := ParseScaleMode("ZERO"); err != nil || s != ScaleZero {
		t.Errorf("ParseScaleMode: %v %v", s, err)
	}
	if ti, err := ParseTitleMode("path"); err != nil || ti != TitlePath {
		t.Errorf("ParseTitleMode: %v %v", ti, err)
	}
	if p, err := ParsePackMode("stack"); err != nil || p != PackStack {
		t.Errorf("ParsePackMode: %v %v", p, err)
	}
}

func TestTitleFallsBackToName(t *testing.T) {
	p := ProcInfo{Name: "kworker/0:1"}
	for _, m := range []TitleMode{TitleCmd, TitlePath, TitleName} {
		if got := m.Title(p); got != "kworker/0:1" {
			t.Errorf("%v: got %q", m, got)
		}
	}
	p = ProcInfo{Name: "bash", Exe: "/usr/bin/bash", Cmdline: "bash -l"}
	if TitleCmd.Title(p) != "bash -l" || TitlePath.Title(p) != "/usr/bin/bash" || TitleName.Title(p) != "bash" {
		t.Error("title mode picked the wrong field")
	}
}
