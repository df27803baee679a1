// Package compose implements the cssc subcommands driving the selector builder.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssc/config"
	"cssc/css"
	"cssc/jsonutil"
	"cssc/state"
)

// Document is the JSON output shape for a composed selector.
type Document struct {
	Selector  string `json:"selector"`
	Fragments int    `json:"fragments"`
}

// Build composes one simple selector from command line flags and writes the
// rendered result.
func Build(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	draft, count, err := draftFromFlags(cmd, log)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("no selector fragments have been specified")
	}

	out, err := draft.Build()
	if err != nil {
		return fmt.Errorf("unable to compose selector: %w", err)
	}
	log.Debug("Selector composed", zap.String("selector", out), zap.Int("fragments", count))

	return write(env, cmd.Bool("json"), Document{Selector: out, Fragments: count})
}

// Combine joins two already rendered selector arguments with the requested
// combinator and writes the result. Arguments are passed through verbatim -
// cssc never parses selector text.
func Combine(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("combine")

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly 2 selector arguments, got %d", cmd.Args().Len())
	}
	comb, err := css.ParseCombinator(cmd.String("with"))
	if err != nil {
		return err
	}

	sel := css.Combine(css.Raw(cmd.Args().Get(0)), comb, css.Raw(cmd.Args().Get(1)))
	out, err := sel.Build()
	if err != nil {
		return fmt.Errorf("unable to combine selectors: %w", err)
	}
	log.Debug("Selectors combined", zap.String("combinator", cmd.String("with")), zap.String("selector", out))

	return write(env, cmd.Bool("json"), Document{Selector: out, Fragments: 2})
}

// draftFromFlags translates fragment flags to builder calls in grammar order
// and reports how many fragments were accepted. Empty flag values are
// collected into a single aggregated error.
func draftFromFlags(cmd *cli.Command, log *zap.Logger) (*css.Draft, int, error) {
	var badFlags error
	accept := func(name, value string) bool {
		if len(strings.TrimSpace(value)) == 0 {
			badFlags = multierr.Append(badFlags, fmt.Errorf("flag --%s requires a non-empty value", name))
			return false
		}
		log.Debug("Added fragment", zap.String("kind", name), zap.String("value", value))
		return true
	}

	draft := new(css.Draft)
	count := 0

	// flags are applied in grammar order, so well-formed input can never
	// trip the builder ordering rule
	if cmd.IsSet("element") && accept("element", cmd.String("element")) {
		draft.Element(cmd.String("element"))
		count++
	}
	if cmd.IsSet("id") && accept("id", cmd.String("id")) {
		draft.ID(cmd.String("id"))
		count++
	}
	for _, class := range cmd.StringSlice("class") {
		if accept("class", class) {
			draft.Class(class)
			count++
		}
	}
	if cmd.IsSet("attr") && accept("attr", cmd.String("attr")) {
		draft.Attr(cmd.String("attr"))
		count++
	}
	for _, pseudo := range cmd.StringSlice("pseudo-class") {
		if accept("pseudo-class", pseudo) {
			draft.PseudoClass(pseudo)
			count++
		}
	}
	if cmd.IsSet("pseudo-element") && accept("pseudo-element", cmd.String("pseudo-element")) {
		draft.PseudoElement(cmd.String("pseudo-element"))
		count++
	}

	if badFlags != nil {
		return nil, 0, badFlags
	}
	return draft, count, nil
}

// render produces the output text for a composed selector document according
// to the output configuration.
func render(cfg *config.OutputConfig, jsonRequested bool, doc Document) (string, error) {
	var out string
	if jsonRequested || cfg.Format == "json" {
		text, err := jsonutil.GetJSON(doc)
		if err != nil {
			return "", fmt.Errorf("unable to serialize selector document: %w", err)
		}
		out = text
	} else {
		out = doc.Selector
	}
	if cfg.TrailingNewline {
		out += "\n"
	}
	return out, nil
}

func write(env *state.LocalEnv, jsonRequested bool, doc Document) error {
	out, err := render(&env.Cfg.Output, jsonRequested, doc)
	if err != nil {
		return err
	}
	if _, err := env.Out.Write([]byte(out)); err != nil {
		return fmt.Errorf("unable to write composed selector: %w", err)
	}
	return nil
}
