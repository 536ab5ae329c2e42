package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lrat-tools/lrattrim/ioline"
)

// slots is the resolved meaning of the 1-4 positional file arguments, the
// way open_input_files assigns files[] into cnf/proof input/output slots
// after sniffing the first file when exactly two were given.
type slots struct {
	cnfIn    string
	proofIn  string
	proofOut string
	cnfOut   string
}

// resolution additionally carries the already-opened reader for the first
// positional file when disambiguation required peeking it: file 1 may be
// a pipe or stdin, so the byte used to sniff its format must be replayed
// rather than re-read from a freshly reopened stream.
type resolution struct {
	slots  slots
	opened *ioline.Reader // non-nil only when len(paths) == 2
	// openedIsCNF reports whether opened is the reader for slots.cnfIn
	// (true) or slots.proofIn (false); meaningless when opened is nil.
	openedIsCNF bool
}

// resolveSlots implements spec.md's file-count disambiguation: 1 file is
// just the input proof; 2 files are disambiguated by peeking the first
// byte of the first one; 3 and 4 files are positional.
func resolveSlots(paths []string, force bool, warn func(format string, args ...any)) (resolution, error) {
	if err := checkDuplicatePaths(paths); err != nil {
		return resolution{}, err
	}

	switch len(paths) {
	case 0:
		return resolution{}, fmt.Errorf("no input file given (try '-h')")
	case 1:
		return resolution{slots: slots{proofIn: paths[0]}}, nil
	case 2:
		if paths[0] == "-" && paths[1] == "-" {
			return resolution{}, fmt.Errorf("can not use '<stdin>' for both first two input files")
		}
		opened, err := openInput(paths[0])
		if err != nil {
			return resolution{}, err
		}
		ch, err := opened.PeekFirstChar()
		if err != nil {
			opened.Close()
			return resolution{}, err
		}
		if ch == 'c' || ch == 'p' {
			if force {
				warn("using '--force' with CNF as first file '%s' does not make sense", paths[0])
			}
			return resolution{slots: slots{cnfIn: paths[0], proofIn: paths[1]}, opened: opened, openedIsCNF: true}, nil
		}
		if looksLikeDimacsPath(paths[1]) {
			if force {
				warn("forced to overwrite second file '%s' with trimmed proof even though it looks like a CNF in DIMACS format", paths[1])
			} else {
				opened.Close()
				return resolution{}, fmt.Errorf("will not overwrite second file '%s' with trimmed proof as it looks like a CNF in DIMACS format (use '--force' to overwrite nevertheless)", paths[1])
			}
		} else if force {
			warn("using '--force' while second file '%s' does not look a CNF does not make sense", paths[1])
		}
		return resolution{slots: slots{proofIn: paths[0], proofOut: paths[1]}, opened: opened}, nil
	case 3:
		return resolution{slots: slots{cnfIn: paths[0], proofIn: paths[1], proofOut: paths[2]}}, nil
	case 4:
		if paths[2] == "-" && paths[3] == "-" {
			return resolution{}, fmt.Errorf("can not use '<stdout>' for both last two output files")
		}
		return resolution{slots: slots{cnfIn: paths[0], proofIn: paths[1], proofOut: paths[2], cnfOut: paths[3]}}, nil
	default:
		return resolution{}, fmt.Errorf("too many files given (%d, try '-h')", len(paths))
	}
}

func checkDuplicatePaths(paths []string) error {
	for i := 0; i+1 < len(paths); i++ {
		if paths[i] == "-" || paths[i] == "/dev/null" {
			continue
		}
		for j := i + 1; j < len(paths); j++ {
			if paths[i] == paths[j] {
				return fmt.Errorf("identical %s and %s file '%s'", numeral(i), numeral(j), paths[i])
			}
		}
	}
	return nil
}

func numeral(i int) string {
	switch i {
	case 0:
		return "1st"
	case 1:
		return "2nd"
	default:
		return "3rd"
	}
}

// looksLikeDimacsPath matches the original's looks_like_a_dimacs_file: a
// suffix check first, then - when the path names a file that already
// exists (the usual case is an output path that doesn't, so this rarely
// fires) - a peek at its first byte for the 'c'/'p' DIMACS line starters.
func looksLikeDimacsPath(path string) bool {
	if path == "-" {
		return false
	}
	lower := strings.ToLower(path)
	for _, suffix := range []string{".cnf", ".cnf.gz", ".cnf.bz2", ".cnf.xz", ".dimacs", ".dimacs.gz", ".dimacs.bz2", ".dimacs.xz"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return firstByteLooksLikeDimacs(path)
}

// firstByteLooksLikeDimacs opens path read-only and peeks its first byte,
// mirroring looks_like_a_dimacs_file's fopen+getc fallback. A path that
// can't be opened (it doesn't exist, or is "/dev/null") is simply not a
// CNF, the same as the original treating a failed fopen as false.
func firstByteLooksLikeDimacs(path string) bool {
	if path == "/dev/null" {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	var b [1]byte
	if _, err := f.Read(b[:]); err != nil {
		return false
	}
	return b[0] == 'c' || b[0] == 'p'
}

// openInput opens path as a block-buffered character source, mapping '-'
// to standard input and '/dev/null' to an always-empty sentinel that is
// never actually opened.
func openInput(path string) (*ioline.Reader, error) {
	if path == "/dev/null" {
		return ioline.NewReader(path, strings.NewReader(""), nil), nil
	}
	if path == "-" {
		return ioline.NewReader("<stdin>", os.Stdin, nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lrattrim: error: can not read '%s'", path)
	}
	return ioline.NewReader(path, f, f), nil
}

// openOutput opens path as a block-buffered byte sink, mapping '-' to
// standard output and '/dev/null' to a discard sink that is never actually
// opened.
func openOutput(path string) (*ioline.Writer, error) {
	if path == "/dev/null" {
		return ioline.NewWriter(path, io.Discard, nil), nil
	}
	if path == "-" {
		return ioline.NewWriter("<stdout>", os.Stdout, nil), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("lrattrim: error: can not write '%s'", path)
	}
	return ioline.NewWriter(path, f, f), nil
}
