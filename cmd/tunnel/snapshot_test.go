package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vovakirdan/tui-tunnel/internal/core"
	"github.com/vovakirdan/tui-tunnel/internal/games/tunnel"
)

func TestRenderSnapshotDeterministic(t *testing.T) {
	opts := snapshotOptions{
		Variant:   tunnel.IDSolid,
		Ticks:     300,
		JumpEvery: 20,
		Width:     64,
		Height:    64,
		Seed:      7,
		TickRate:  60,
	}

	var a, b bytes.Buffer
	resA, err := renderSnapshot(opts, &a)
	if err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}
	resB, err := renderSnapshot(opts, &b)
	if err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}

	if resA != resB {
		t.Errorf("Results differ: %+v vs %+v", resA, resB)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Same seed produced different images")
	}
	if _, err := png.Decode(&a); err != nil {
		t.Errorf("Output is not a PNG: %v", err)
	}
}

func TestRenderSnapshotFallsWithoutJumping(t *testing.T) {
	opts := snapshotOptions{
		Variant:  tunnel.IDSprites,
		Ticks:    600,
		Width:    32,
		Height:   32,
		Seed:     1,
		TickRate: 60,
	}

	var buf bytes.Buffer
	res, err := renderSnapshot(opts, &buf)
	if err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}
	if !res.GameOver || res.Phase != core.PhaseGameOver {
		t.Errorf("Expected the player to fall out, got %+v", res)
	}
	if res.Ticks >= opts.Ticks {
		t.Errorf("Run should stop early on game over, ran %d ticks", res.Ticks)
	}
}

func TestRenderSnapshotRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if _, err := renderSnapshot(snapshotOptions{Variant: "nope", Width: 8, Height: 8}, &buf); err == nil {
		t.Error("Expected an error for an unknown variant")
	}
	if _, err := renderSnapshot(snapshotOptions{Variant: tunnel.IDSolid}, &buf); err == nil {
		t.Error("Expected an error for a zero-size image")
	}
}
