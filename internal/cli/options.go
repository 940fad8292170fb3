package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/sortbench/internal/bench"
	"github.com/roach88/sortbench/internal/fill"
	"github.com/roach88/sortbench/internal/profile"
)

// Flag names shared by conflict detection and error messages.
const (
	flagList          = "list"
	flagFillRand      = "fill-rand"
	flagRandLower     = "rand-lower"
	flagRandUpper     = "rand-upper"
	flagFillForward   = "fill-forward"
	flagFillBackward  = "fill-backward"
	flagFillIncrement = "fill-increment"
	flagAlgAll        = "alg-all"
	flagAlgExcept     = "alg-except"
)

// fillFlags choose and shape the input list.
var fillFlags = []string{
	flagList, flagFillRand, flagRandLower, flagRandUpper,
	flagFillForward, flagFillBackward, flagFillIncrement,
}

// fillConflicts are the input options that cannot be combined.
var fillConflicts = [][2]string{
	{flagList, flagFillRand},
	{flagList, flagFillForward},
	{flagList, flagFillBackward},
	{flagList, flagFillIncrement},
	{flagFillRand, flagFillForward},
	{flagFillRand, flagFillBackward},
	{flagFillRand, flagFillIncrement},
	{flagFillForward, flagFillBackward},
}

// algFlag returns the flag that enables the named algorithm.
func algFlag(name string) string {
	return "alg-" + name
}

// values holds the element-typed option values.
type values[E bench.Number] struct {
	list      []E
	lower     E
	upper     E
	increment E
}

// resolve records which flags were given and merges the profile, if any.
func (o *RunOptions) resolve(cmd *cobra.Command) error {
	o.set = make(map[string]bool)
	o.enable = nil
	cmd.Flags().Visit(func(f *pflag.Flag) {
		o.set[f.Name] = true
	})

	if o.Profile == "" {
		return nil
	}
	p, err := profile.Load(o.Profile)
	if err != nil {
		return err
	}
	o.applyProfile(p)
	return nil
}

// applyProfile copies profile values into every option the command line
// left unset. Any fill flag on the command line replaces the profile's
// input section; any algorithm flag replaces its algorithm section.
func (o *RunOptions) applyProfile(p *profile.Profile) {
	take := func(name string, present bool, apply func()) {
		if present && !o.set[name] {
			apply()
			o.set[name] = true
		}
	}

	take("type", p.Type != "", func() { o.Type = p.Type })
	take("prec", p.Prec != nil, func() { o.Prec = int(*p.Prec) })
	take("avg", p.Avg != nil, func() { o.Avg = *p.Avg })
	take("delim", p.Delim != nil, func() { o.Delim = *p.Delim })
	take("quiet", p.Quiet != nil, func() { o.Quiet = *p.Quiet })
	take("time", p.Time != nil, func() { o.Time = *p.Time })

	if p.HasFill() && !o.anySet(fillFlags) {
		take(flagList, len(p.List) > 0, func() { o.List = formatNumbers(p.List) })
		if f := p.Fill; f != nil {
			take(flagFillRand, f.Rand != nil, func() { o.FillRand = *f.Rand })
			take(flagRandLower, f.RandLower != nil, func() { o.RandLower = formatNumber(*f.RandLower) })
			take(flagRandUpper, f.RandUpper != nil, func() { o.RandUpper = formatNumber(*f.RandUpper) })
			take(flagFillForward, f.Forward != nil, func() { o.FillForward = *f.Forward })
			take(flagFillBackward, f.Backward != nil, func() { o.FillBackward = *f.Backward })
			take(flagFillIncrement, f.Increment != nil, func() { o.FillIncrement = formatNumber(*f.Increment) })
		}
	}

	if p.HasAlgorithms() && !o.anySet(o.algFlags()) {
		a := p.Algorithms
		take(flagAlgAll, a.All, func() { o.AlgAll = true })
		take(flagAlgExcept, len(a.Except) > 0, func() { o.AlgExcept = a.Except })
		for _, name := range a.Enable {
			o.enable = append(o.enable, name)
			o.set[algFlag(name)] = true
		}
	}
}

func (o *RunOptions) anySet(names []string) bool {
	for _, name := range names {
		if o.set[name] {
			return true
		}
	}
	return false
}

// algFlags returns every algorithm selection flag.
func (o *RunOptions) algFlags() []string {
	names := []string{flagAlgAll, flagAlgExcept}
	for _, name := range bench.Names() {
		names = append(names, algFlag(name))
	}
	return names
}

// algConflicts pairs '--alg-except' with every '--alg-<name>'.
func (o *RunOptions) algConflicts() [][2]string {
	var pairs [][2]string
	for _, name := range bench.Names() {
		pairs = append(pairs, [2]string{flagAlgExcept, algFlag(name)})
	}
	return pairs
}

// checkConflicts fails on the first pair whose options are both set.
func (o *RunOptions) checkConflicts(pairs [][2]string) error {
	for _, p := range pairs {
		if o.set[p[0]] && o.set[p[1]] {
			return fmt.Errorf("Conflicting options: '--%s' and '--%s'.", p[0], p[1])
		}
	}
	return nil
}

// checkExcept rejects an '--alg-except' that was given but names nothing,
// as in '--alg-except='.
func (o *RunOptions) checkExcept() error {
	if o.set[flagAlgExcept] && len(o.AlgExcept) == 0 {
		return errExceptMissing()
	}
	return nil
}

// config applies the general options over the element type's defaults.
func (o *RunOptions) config(c bench.Config) bench.Config {
	if o.set["prec"] {
		c.Precision = o.Prec
	}
	c.Delimiter = o.Delim
	c.Quiet = o.Quiet
	c.ShowTime = o.Time
	c.Trials = o.Avg
	return c
}

// selection builds the algorithm selection from the flags and profile.
func (o *RunOptions) selection() bench.Selection {
	sel := bench.Selection{All: o.AlgAll, Except: o.AlgExcept}
	for _, name := range bench.Names() {
		if enabled := o.Algs[name]; enabled != nil && *enabled {
			sel.Enabled = append(sel.Enabled, name)
		}
	}
	sel.Enabled = append(sel.Enabled, o.enable...)
	return sel
}

// parseValues parses the element-typed options with parse.
func parseValues[E bench.Number](o *RunOptions, parse func(string) (E, error)) (values[E], error) {
	var v values[E]

	arg := func(name, s string) (E, error) {
		x, err := parse(strings.TrimSpace(s))
		if err != nil {
			return x, fmt.Errorf("the argument ('%s') for option '--%s' is invalid", s, name)
		}
		return x, nil
	}

	for _, s := range o.List {
		x, err := arg(flagList, s)
		if err != nil {
			return v, err
		}
		v.list = append(v.list, x)
	}

	var err error
	if v.lower, err = arg(flagRandLower, o.RandLower); err != nil {
		return v, err
	}
	if v.upper, err = arg(flagRandUpper, o.RandUpper); err != nil {
		return v, err
	}
	if v.increment, err = arg(flagFillIncrement, o.FillIncrement); err != nil {
		return v, err
	}
	return v, nil
}

// buildInput produces the canonical input: a forward or backward fill when
// requested, else the given list, else the random fill.
func buildInput[E bench.Number](o *RunOptions, v values[E], rng *rand.Rand) ([]E, error) {
	switch {
	case o.set[flagFillForward]:
		return fill.Forward(o.FillForward, v.increment)
	case o.set[flagFillBackward]:
		return fill.Backward(o.FillBackward, v.increment)
	case o.set[flagList]:
		return v.list, nil
	default:
		return fill.Random(o.FillRand, v.lower, v.upper, rng)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNumbers(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatNumber(v)
	}
	return out
}
