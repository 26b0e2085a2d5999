/*
Package main is the refsel cli tool (Reference Selector):
reads container image references from stdin (one per line), parses and
orders them, and prints the selection most preferred first.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	refsel "github.com/BillXI/big-data-for-chimps-code"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Input filters
	OptionsFilter OptionsFilter `group:"Input filters"`
	// Selection and ordering
	OptionsSelect OptionsSelect `group:"Selection and sort"`
	// Range clipping
	OptionsRange OptionsRange `group:"Range"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsFilter struct {
	Include       string `short:"i" long:"include"        description:"Regexp to keep references (applied before parsing)"`
	Exclude       string `short:"e" long:"exclude"        description:"Regexp to drop references (applied before parsing)"`
	SkipMalformed bool   `short:"k" long:"skip-malformed" description:"Drop references matching neither grammar instead of failing"`
}

type OptionsSelect struct {
	Pick       string `short:"p" long:"pick"        description:"Aggregation" choice:"all" choice:"family" choice:"slug" choice:"best" default:"all"`
	Order      string `short:"S" long:"order"       description:"Output ordering" choice:"best" choice:"worst" choice:"none" default:"best"`
	SemverTies bool   `short:"t" long:"semver-ties" description:"Break version-rank ties by SemVer precedence (newest first)"`
	Limit      int    `short:"n" long:"limit"       description:"Max number of output references (<=0 = unlimited)" default:"0"`
}

type OptionsRange struct {
	Min             string `short:"m" long:"min"              description:"Lower bound on the numeric version extracted from the tag"`
	Max             string `short:"x" long:"max"              description:"Upper bound on the numeric version extracted from the tag"`
	MinExclusive    bool   `short:"M" long:"min-exclusive"    description:"Exclude lower bound itself"`
	MaxExclusive    bool   `short:"X" long:"max-exclusive"    description:"Exclude upper bound itself"`
	KeepUnversioned bool   `short:"u" long:"keep-unversioned" description:"Keep references whose tag has no numeric version"`
}

type OptionsOutput struct {
	Format string `short:"o" long:"output" description:"Projection of each reference" choice:"raw" choice:"family" choice:"slug" default:"raw"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `refsel — Reference Selector.
A CLI tool for picking the best container image from reference lists:
parses registry/repository/slug[:tag] and [repository/]slug[:tag] forms,
orders them deterministically (force markers, registries, versions), and
can keep only the best reference per image line.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read stdin line by line, skipping blanks.
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v", err)
		os.Exit(2)
	}

	// Compile prefilter regexes (when given).
	var incRe, excRe *regexp.Regexp
	if s := strings.TrimSpace(opt.OptionsFilter.Include); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "include regexp: %v", err)
			os.Exit(2)
		}
		incRe = re
	}
	if s := strings.TrimSpace(opt.OptionsFilter.Exclude); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exclude regexp: %v", err)
			os.Exit(2)
		}
		excRe = re
	}

	rOpt := refsel.Options{
		Include:       incRe,
		Exclude:       excRe,
		SkipMalformed: opt.OptionsFilter.SkipMalformed,
		SemverTies:    opt.OptionsSelect.SemverTies,
		Pick:          refsel.ParsePick(opt.OptionsSelect.Pick),
		Order:         refsel.ParseOrder(opt.OptionsSelect.Order),
		Output:        refsel.ParseOutput(opt.OptionsOutput.Format),
		Limit:         opt.OptionsSelect.Limit,
		Range: refsel.Range{
			Min:             strings.TrimSpace(opt.OptionsRange.Min),
			Max:             strings.TrimSpace(opt.OptionsRange.Max),
			MinExclusive:    opt.OptionsRange.MinExclusive,
			MaxExclusive:    opt.OptionsRange.MaxExclusive,
			KeepUnversioned: opt.OptionsRange.KeepUnversioned,
		},
	}

	out, err := refsel.Select(in, rOpt)
	if err != nil {
		// Bad input, not a programming fault: no stack trace, just the
		// offending reference.
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	for _, t := range out {
		fmt.Println(t)
	}
}
