package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
)

func TestModeForUser(t *testing.T) {
	def := config.Scored
	def.MultiHit = true
	g := &games{logger: log.New(io.Discard), defaultMode: def}

	if m := g.modeFor("duel"); m.Name != "duel" || !m.MultiHit {
		t.Errorf("modeFor(duel) = %+v, want duel carrying multi-hit", m)
	}
	if m := g.modeFor("alice"); m != def {
		t.Errorf("modeFor(alice) = %+v, want server default", m)
	}
	if m := g.modeFor(""); m != def {
		t.Errorf("modeFor(\"\") = %+v, want server default", m)
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Fatalf("getSize = %d, %d, %v", w, h, err)
	}
}
