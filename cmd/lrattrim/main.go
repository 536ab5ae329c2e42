// Command lrattrim trims and checks LRAT proofs: it parses an optional
// DIMACS CNF and a required LRAT proof, trims the proof to the clauses
// needed to derive the empty clause, checks it by reverse unit
// propagation (eagerly while parsing, or once afterwards against only the
// trimmed clauses), and optionally writes the trimmed, renumbered proof.
//
// It is grounded on lrat-trim.c's main/options/open_input_files/print_mode
// and driven from github.com/jessevdk/go-flags the way
// cmd/mysqldef/mysqldef.go drives sqldef.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/lrat-tools/lrattrim/check"
	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/dimacs"
	"github.com/lrat-tools/lrattrim/ioline"
	"github.com/lrat-tools/lrattrim/logutil"
	"github.com/lrat-tools/lrattrim/lrat"
	"github.com/lrat-tools/lrattrim/report"
	"github.com/lrat-tools/lrattrim/trim"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, paths := parseOptions(args)
	printer := logutil.NewPrinter(os.Stdout, opts.verbosity())
	logutil.InitSlog(opts.Log)
	slog.Debug("starting run", "args", paths, "track", opts.Track, "forward", opts.Forward)

	res, err := resolveSlots(paths, opts.Force, printer.Wrn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
		return 1
	}
	fileSlots := res.slots
	preopenedCNF, preopenedProof := (*ioline.Reader)(nil), (*ioline.Reader)(nil)
	if res.opened != nil {
		if res.openedIsCNF {
			preopenedCNF = res.opened
		} else {
			preopenedProof = res.opened
		}
	}
	if opts.NoTrim && (fileSlots.proofOut != "" || fileSlots.cnfOut != "") {
		fmt.Fprintf(os.Stderr, "lrattrim: error: can not write to '%s' with '--no-trim'\n", fileSlots.proofOut)
		return 1
	}
	if opts.Force && len(paths) != 2 {
		printer.Wrn("using '--force' without two files does not make sense")
	}
	if fileSlots.cnfIn == "" && opts.NoCheck {
		printer.Wrn("using '--no-check' without CNF does not make sense")
	}
	if fileSlots.cnfIn == "" && opts.Forward {
		printer.Wrn("using '--forward' without CNF does not make sense")
	}

	checking := !opts.NoCheck && fileSlots.cnfIn != ""
	// Without trimming no clause is marked used, so the backward pass below
	// would check nothing; checking then has to happen while parsing.
	forward := opts.Forward || opts.NoTrim
	trimming := !opts.NoTrim && (!forward || fileSlots.proofOut != "" || fileSlots.cnfOut != "")

	printer.Banner(version)
	printer.Msg("%s", modeDescription(fileSlots))
	printer.Msg("%s", checkingModeDescription(checking, forward, trimming))

	stats := report.New()
	store := clause.NewStore(opts.Track)

	if fileSlots.cnfIn != "" {
		cnfReader := preopenedCNF
		if cnfReader == nil {
			var err error
			cnfReader, err = openInput(fileSlots.cnfIn)
			if err != nil {
				fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
				return 1
			}
		}
		result, err := dimacs.Parse(cnfReader, store, stats)
		cnfReader.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		store.LastOriginal = result.ClausesAdded
		printer.Msg("parsed CNF with %d added clauses", stats.Original.CNF.Added)
		slog.Info("parsed CNF", "variables", result.Header.Variables, "clauses", result.Header.Clauses)
	}

	var checker *check.State
	if checking && forward {
		checker = check.NewState(store, opts.Track, fileSlots.proofIn)
	}

	proofReader := preopenedProof
	if proofReader == nil {
		var err error
		proofReader, err = openInput(fileSlots.proofIn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
			return 1
		}
	}
	parseOpts := lrat.ParseOptions{Track: opts.Track, Checking: checking, Forward: forward, Trimming: trimming}
	_, err = lrat.Parse(proofReader, store, stats, checker, parseOpts)
	proofReader.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printer.Msg("parsed proof with %d added and %d deleted clauses", stats.Original.Proof.Added, stats.Original.Proof.Deleted)

	if trimming {
		trim.Trim(store, stats)
		printer.Msg("trimmed %d original and %d proof clauses", stats.Trimmed.CNF.Added, stats.Trimmed.Proof.Added)
		printer.Dump("trim result", stats.Trimmed)
	}

	if checking && !forward && store.EmptyClause != 0 {
		checker = check.NewState(store, opts.Track, fileSlots.proofIn)
		for id := store.FirstProofAddition; ; id++ {
			if store.Used(id) != 0 {
				if err := checker.Clause(id, store.Literals(id), store.Antecedents(id), stats); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return 1
				}
			}
			if id == store.EmptyClause {
				break
			}
		}
	}

	if fileSlots.proofOut != "" {
		w, err := openOutput(fileSlots.proofOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
			return 1
		}
		printer.Msg("writing proof to '%s'", w.Path())
		if _, err := lrat.Emit(w, store, stats); err != nil {
			w.Close()
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "lrattrim: error: can not write '%s'\n", fileSlots.proofOut)
			return 1
		}
	}

	if fileSlots.cnfOut != "" {
		printer.Wrn("writing the clausal core as CNF is not implemented yet")
		printer.Wrn("(only trimming and writing the input proof)")
	}

	exitCode := 0
	if stats.Clauses.Checked.Empty != 0 {
		printer.Verified()
		exitCode = 20
	} else {
		printer.Msg("no empty clause found and checked")
	}

	stats.Finish()
	printSummary(printer, stats, checking)

	if opts.StatsFile != "" {
		if err := writeStatsFile(opts.StatsFile, stats); err != nil {
			fmt.Fprintf(os.Stderr, "lrattrim: error: %s\n", err)
			return 1
		}
	}

	return exitCode
}

func modeDescription(s slots) string {
	if s.cnfIn != "" {
		switch {
		case s.proofOut != "" && s.cnfOut != "":
			return "reading CNF and LRAT files and writing them too"
		case s.proofOut != "":
			return "reading CNF and LRAT files and writing LRAT file"
		case s.cnfOut != "":
			return "reading CNF and LRAT files and writing CNF file"
		default:
			return "reading CNF and LRAT files"
		}
	}
	if s.proofOut != "" {
		return "reading and writing LRAT files"
	}
	return "only reading LRAT file"
}

func checkingModeDescription(checking, forward, trimming bool) string {
	if checking {
		if forward {
			if trimming {
				return "forward checking all clauses followed by trimming proof"
			}
			return "forward checking all clauses without trimming proof"
		}
		if trimming {
			return "backward checking trimmed clauses after trimming proof"
		}
		return "backward checking all clauses without trimming proof"
	}
	if trimming {
		return "trimming proof without checking clauses"
	}
	return "neither trimming proof not checking clauses"
}

func printSummary(p *logutil.Printer, stats *report.Stats, checking bool) {
	seconds := stats.Duration.Seconds()
	if checking {
		var perSecond float64
		if seconds > 0 {
			perSecond = float64(stats.Clauses.Checked.Total) / seconds
		}
		p.Msg("checked %d clauses %.0f per second", stats.Clauses.Checked.Total, perSecond)
		p.Msg("resolved %d clauses %.2f per checked clause",
			stats.Clauses.Resolved, report.Average(stats.Clauses.Resolved, stats.Clauses.Checked.Total))
		p.Msg("assigned %d literals %.2f per checked clause",
			stats.Literals.Assigned, report.Average(stats.Literals.Assigned, stats.Clauses.Checked.Total))
	}
	p.Msg("maximum memory usage of %.0f MB", report.MegaBytes(stats.PeakRSS))
	p.Msg("total time of %.2f seconds", seconds)
}

func writeStatsFile(path string, stats *report.Stats) error {
	out, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("can not encode statistics: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("can not write '%s'", path)
	}
	return nil
}
