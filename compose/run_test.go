package compose

import (
	"bytes"
	"context"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"cssc/config"
	"cssc/jsonutil"
	"cssc/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv, *bytes.Buffer) {
	t.Helper()

	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg

	buf := &bytes.Buffer{}
	env.Out = buf
	return ctx, env, buf
}

// buildCommand mirrors the flag set the program wires for the build subcommand
func buildCommand() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Action: Build,
		// mirror the program's non-exiting handler so errors reach the test
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "element"},
			&cli.StringFlag{Name: "id"},
			&cli.StringSliceFlag{Name: "class"},
			&cli.StringFlag{Name: "attr"},
			&cli.StringSliceFlag{Name: "pseudo-class"},
			&cli.StringFlag{Name: "pseudo-element"},
			&cli.BoolFlag{Name: "json"},
		},
	}
}

func combineCommand() *cli.Command {
	return &cli.Command{
		Name:   "combine",
		Action: Combine,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "with", Value: "descendant"},
			&cli.BoolFlag{Name: "json"},
		},
	}
}

func TestBuild_TextOutput(t *testing.T) {
	ctx, _, buf := setupTestEnv(t)

	err := buildCommand().Run(ctx, []string{"build",
		"--element", "a", "--attr", `href$=".png"`, "--pseudo-class", "focus"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := buf.String(); got != "a[href$=\".png\"]:focus\n" {
		t.Errorf("output = %q, want %q", got, "a[href$=\".png\"]:focus\n")
	}
}

func TestBuild_RepeatedClasses(t *testing.T) {
	ctx, _, buf := setupTestEnv(t)

	err := buildCommand().Run(ctx, []string{"build",
		"--id", "main", "--class", "container", "--class", "editable"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := strings.TrimSuffix(buf.String(), "\n"); got != "#main.container.editable" {
		t.Errorf("output = %q, want %q", got, "#main.container.editable")
	}
}

func TestBuild_JSONOutput(t *testing.T) {
	ctx, _, buf := setupTestEnv(t)

	err := buildCommand().Run(ctx, []string{"build",
		"--element", "div", "--id", "app", "--json"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	doc, err := jsonutil.FromJSON[Document](strings.TrimSuffix(buf.String(), "\n"))
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Selector != "div#app" {
		t.Errorf("selector = %q, want %q", doc.Selector, "div#app")
	}
	if doc.Fragments != 2 {
		t.Errorf("fragments = %d, want 2", doc.Fragments)
	}
}

func TestBuild_NoFragments(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)

	if err := buildCommand().Run(ctx, []string{"build"}); err == nil {
		t.Error("Build() expected error without fragments")
	}
}

func TestBuild_EmptyFlagValuesAggregated(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)

	err := buildCommand().Run(ctx, []string{"build",
		"--element", " ", "--id", "", "--class", "row"})
	if err == nil {
		t.Fatal("Build() expected aggregated flag errors")
	}
	for _, flag := range []string{"--element", "--id"} {
		if !strings.Contains(err.Error(), flag) {
			t.Errorf("error %q does not mention %s", err, flag)
		}
	}
}

func TestCombine_Child(t *testing.T) {
	ctx, _, buf := setupTestEnv(t)

	err := combineCommand().Run(ctx, []string{"combine", "--with", "child", "div#main", "span"})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if got := strings.TrimSuffix(buf.String(), "\n"); got != "div#main > span" {
		t.Errorf("output = %q, want %q", got, "div#main > span")
	}
}

func TestCombine_DefaultsToDescendant(t *testing.T) {
	ctx, _, buf := setupTestEnv(t)

	err := combineCommand().Run(ctx, []string{"combine", "ul", "li"})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if got := strings.TrimSuffix(buf.String(), "\n"); got != "ul   li" {
		t.Errorf("output = %q, want %q", got, "ul   li")
	}
}

func TestCombine_WrongArgCount(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)

	if err := combineCommand().Run(ctx, []string{"combine", "div"}); err == nil {
		t.Error("Combine() expected error for single argument")
	}
}

func TestCombine_UnknownCombinator(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)

	if err := combineCommand().Run(ctx, []string{"combine", "--with", "cousin", "a", "b"}); err == nil {
		t.Error("Combine() expected error for unknown combinator")
	}
}

func TestRender_ConfigFormats(t *testing.T) {
	doc := Document{Selector: "#main.container", Fragments: 3}

	tests := []struct {
		name string
		cfg  config.OutputConfig
		json bool
		want string
	}{
		{"text with newline", config.OutputConfig{Format: "text", TrailingNewline: true}, false, "#main.container\n"},
		{"text without newline", config.OutputConfig{Format: "text"}, false, "#main.container"},
		{"json from config", config.OutputConfig{Format: "json"}, false, `{"selector":"#main.container","fragments":3}`},
		{"json from flag", config.OutputConfig{Format: "text"}, true, `{"selector":"#main.container","fragments":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(&tt.cfg, tt.json, doc)
			if err != nil {
				t.Fatalf("render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("render() = %q, want %q", got, tt.want)
			}
		})
	}
}
