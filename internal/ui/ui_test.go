package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/planner"
)

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Build Plan", "buildit generate", []Field{
		{Key: "Backend", Value: "http://localhost:8000"},
		{Key: "Mode", Value: "build"},
	}).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"BUILD PLAN", "buildit generate", "Backend:", "http://localhost:8000"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Backend:") > strings.Index(out, "Mode:") {
		t.Error("params should keep their order")
	}
}

func TestResultRender(t *testing.T) {
	success := NewSuccessResult("Health check", []Field{{Key: "Status", Value: "healthy"}}).SetWidth(80).Render()
	if !strings.Contains(success, "SUCCESS") || !strings.Contains(success, "healthy") {
		t.Errorf("unexpected success box:\n%s", success)
	}

	failure := NewFailureResult("Build Plan failed", errors.New("goal too short"), []string{"Adjust the goal"}).
		SetWidth(80).Render()
	for _, want := range []string{"FAILED", "Error: goal too short", "Troubleshooting:", "Adjust the goal"} {
		if !strings.Contains(failure, want) {
			t.Errorf("failure box missing %q:\n%s", want, failure)
		}
	}

	warning := NewWarningResult("Backend degraded", nil).AddDetail("MongoDB", "disconnected").SetWidth(80).Render()
	if !strings.Contains(warning, "WARNING") || !strings.Contains(warning, "disconnected") {
		t.Errorf("unexpected warning box:\n%s", warning)
	}
}

func TestRunner_Success(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerConfig{
		Title:   "Build Plan",
		Command: "buildit generate",
		Wait:    "Generating build plan",
		Output:  &buf,
		Width:   80,
	})

	err := r.Run(context.Background(), func(ctx context.Context) (Outcome, error) {
		return Outcome{Body: "plan body", Details: []Field{{Key: "Model", Value: "gemini"}}}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BUILD PLAN", "Generating build plan", "plan body", "Build Plan complete", "gemini", "Duration:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunner_Failure(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerConfig{Title: "Build Plan", Command: "buildit generate", Output: &buf, Width: 80})

	want := api.NewHTTPError(422, "goal too short")
	err := r.Run(context.Background(), func(ctx context.Context) (Outcome, error) {
		return Outcome{}, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("Run() error = %v, want %v", err, want)
	}

	out := buf.String()
	if !strings.Contains(out, "goal too short") || !strings.Contains(out, "Adjust the selection") {
		t.Errorf("unexpected failure output:\n%s", out)
	}
}

func TestRenderPlan(t *testing.T) {
	r := &api.GenerationResult{
		Overview:      "A line follower",
		Steps:         []string{"Mount motors", "Wire sensors"},
		PartsNeeded:   []string{"IR sensor"},
		EstimatedCost: "$20",
		Tips:          []string{"Charge the battery"},
	}

	build := RenderPlan(r, planner.ModeBuild, 80)
	for _, want := range []string{"Overview", "A line follower", " 1. Mount motors", " 2. Wire sensors", "Wiring", planner.NoWiring, planner.NoCode, "Charge the battery"} {
		if !strings.Contains(build, want) {
			t.Errorf("build plan missing %q:\n%s", want, build)
		}
	}
	if strings.Contains(build, "IR sensor") {
		t.Error("build plan should not show the parts list")
	}

	reverse := RenderPlan(r, planner.ModeReverse, 80)
	for _, want := range []string{"Parts", "IR sensor", "$20", planner.NoWhereInfo} {
		if !strings.Contains(reverse, want) {
			t.Errorf("reverse plan missing %q:\n%s", want, reverse)
		}
	}

	r.WhereToBuy = []string{"Adafruit", "Amazon"}
	reverse = RenderPlan(r, planner.ModeReverse, 80)
	for _, want := range []string{"• Adafruit", "• Amazon"} {
		if !strings.Contains(reverse, want) {
			t.Errorf("reverse plan missing %q:\n%s", want, reverse)
		}
	}
	if strings.Contains(reverse, planner.NoWhereInfo) {
		t.Error("sourcing fallback shown despite where_to_buy entries")
	}

	empty := RenderPlan(nil, planner.ModeBuild, 80)
	for _, want := range []string{planner.NoOverview, planner.NoSteps} {
		if !strings.Contains(empty, want) {
			t.Errorf("empty plan missing %q:\n%s", want, empty)
		}
	}
}

func TestRenderKits(t *testing.T) {
	out := RenderKits([]api.Kit{{ID: "k1", Name: "Motor Kit", Parts: []string{"DC Motor", "L298N"}}}, 80)
	for _, want := range []string{"Motor Kit", "(k1)", "2 parts: DC Motor, L298N"} {
		if !strings.Contains(out, want) {
			t.Errorf("kit list missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(RenderKits(nil, 80), "No kits available") {
		t.Error("empty catalog should say so")
	}
}

func TestPlanDetails(t *testing.T) {
	details := PlanDetails(&api.GenerationResult{Steps: []string{"a"}, ModelUsed: "gemini", EstimatedCost: "$5"}, planner.ModeReverse)
	want := []Field{
		{Key: "Mode", Value: "Reverse Mode"},
		{Key: "Steps", Value: "1"},
		{Key: "Est. cost", Value: "$5"},
		{Key: "Model", Value: "gemini"},
	}
	if len(details) != len(want) {
		t.Fatalf("PlanDetails() = %v, want %v", details, want)
	}
	for i := range want {
		if details[i] != want[i] {
			t.Errorf("PlanDetails()[%d] = %v, want %v", i, details[i], want[i])
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Config exists", []string{"It will be replaced"}, "Overwrite?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Overwrite? [y/N]") {
			t.Errorf("prompt missing:\n%s", out.String())
		}
	}
}
