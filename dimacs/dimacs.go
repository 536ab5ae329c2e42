// Package dimacs parses the original CNF formula an LRAT proof certifies,
// installing its clauses into a clause.Store at identifiers 1..C.
//
// It is grounded on lrat-trim.c's parse_cnf: skip comment lines until the
// 'p cnf <variables> <clauses>' header, then read exactly that many
// zero-terminated clauses, tolerating a trailing 'c' comment after any
// clause. Column/line bookkeeping and integer overflow detection are
// delegated to ioline.Reader.
package dimacs

import (
	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/container"
	"github.com/lrat-tools/lrattrim/ioline"
	"github.com/lrat-tools/lrattrim/report"
)

// Header is the parsed 'p cnf <variables> <clauses>' line.
type Header struct {
	Variables int32
	Clauses   int32
}

// Result carries the outcome of a successful CNF parse.
type Result struct {
	Header       Header
	ClausesAdded int32
}

// Parse reads a DIMACS CNF formula from r, installing each clause into
// store at dense identifiers 1..Header.Clauses with clause.Present status,
// and returns the parsed header and count. It returns *ioline.ParseError
// for any grammar violation, formatted exactly like the original's prr.
func Parse(r *ioline.Reader, store *clause.Store, stats *report.Stats) (Result, error) {
	header, err := parseHeader(r)
	if err != nil {
		return Result{}, err
	}

	store.Grow(header.Clauses)

	var pending container.Stack[int32]
	var parsed int32
	for {
		ch, err := r.ReadChar()
		if err != nil {
			return Result{}, err
		}
		if ch == ' ' || ch == '\t' || ch == '\n' {
			continue
		}
		if ch == ioline.EOF {
			if pending.Len() > 0 {
				return Result{}, r.Errorf("'0' missing after clause before end-of-file")
			}
			if parsed < header.Clauses {
				missing := header.Clauses - parsed
				if missing == 1 {
					return Result{}, r.Errorf("clause missing")
				}
				return Result{}, r.Errorf("%d clauses missing", missing)
			}
			break
		}
		if ch == 'c' {
			if err := skipLineComment(r, "unexpected end-of-file in comment after header"); err != nil {
				return Result{}, err
			}
			continue
		}

		lit, err := parseLiteral(r, ch, header.Variables)
		if err != nil {
			return Result{}, err
		}
		if parsed >= header.Clauses {
			return Result{}, r.Errorf("too many clauses")
		}
		if lit == 0 {
			parsed++
			lits := pending.Clone()
			pending.Clear()
			store.SetLiterals(parsed, lits)
			store.SetStatus(parsed, clause.Present)
			stats.Original.CNF.Added++
		} else {
			pending.Push(lit)
		}
	}

	return Result{Header: header, ClausesAdded: parsed}, nil
}

func parseHeader(r *ioline.Reader) (Header, error) {
	ch, err := r.ReadFirstChar()
	if err != nil {
		return Header{}, err
	}
	for ch != 'p' {
		if ch != 'c' {
			return Header{}, r.Errorf("expected 'c' or 'p' as first character")
		}
		if err := skipLineComment(r, "unexpected end-of-file in comment before header"); err != nil {
			return Header{}, err
		}
		if ch, err = r.ReadChar(); err != nil {
			return Header{}, err
		}
	}
	if ch, err = r.ReadChar(); err != nil {
		return Header{}, err
	} else if ch != ' ' {
		return Header{}, r.Errorf("expected space after 'p'")
	}
	for _, want := range []int{'c', 'n', 'f'} {
		if ch, err = r.ReadChar(); err != nil {
			return Header{}, err
		} else if ch != want {
			return Header{}, r.Errorf("expected 'p cnf'")
		}
	}
	if ch, err = r.ReadChar(); err != nil {
		return Header{}, err
	} else if ch != ' ' {
		return Header{}, r.Errorf("expected space after 'p cnf'")
	}

	variables, ch, err := parseUnsignedField(r, "expected digit after 'p cnf '")
	if err != nil {
		return Header{}, err
	}
	if ch != ' ' {
		return Header{}, r.Errorf("expected space after 'p cnf %d", variables)
	}

	clauses, ch, err := parseUnsignedField(r, "expected digit after 'p cnf %d '", variables)
	if err != nil {
		return Header{}, err
	}
	if ch != '\n' {
		return Header{}, r.Errorf("expected new-line after 'p cnf %d %d'", variables, clauses)
	}

	return Header{Variables: variables, Clauses: clauses}, nil
}

func parseUnsignedField(r *ioline.Reader, errFormat string, errArgs ...any) (int32, int, error) {
	ch, err := r.ReadChar()
	if err != nil {
		return 0, 0, err
	}
	if !ioline.IsDigit(ch) {
		return 0, 0, r.Errorf(errFormat, errArgs...)
	}
	return r.ScanUnsigned(ch)
}

func parseLiteral(r *ioline.Reader, ch int, variables int32) (int32, error) {
	sign := int32(1)
	if ch == '-' {
		var err error
		if ch, err = r.ReadChar(); err != nil {
			return 0, err
		}
		if !ioline.IsDigit(ch) {
			return 0, r.Errorf("expected digit after '-'")
		}
		if ch == '0' {
			return 0, r.Errorf("expected non-zero digit after '-'")
		}
		sign = -1
	} else if !ioline.IsDigit(ch) {
		return 0, r.Errorf("unexpected character instead of literal")
	}

	idx, next, err := r.ScanUnsignedNoLeadingZero(ch, "unexpected digit '%c' after '0'")
	if err != nil {
		return 0, err
	}
	lit := sign * idx
	if idx > variables {
		return 0, r.Errorf("literal '%d' exceeds maximum variable '%d'", lit, variables)
	}
	if next != 'c' && next != ' ' && next != '\t' && next != '\n' {
		return 0, r.Errorf("expected white space after '%d'", lit)
	}
	if next == 'c' {
		if err := skipLineComment(r, "unexpected end-of-file in comment after header"); err != nil {
			return 0, err
		}
	}
	return lit, nil
}

func skipLineComment(r *ioline.Reader, eofMessage string) error {
	for {
		ch, err := r.ReadChar()
		if err != nil {
			return err
		}
		if ch == '\n' {
			return nil
		}
		if ch == ioline.EOF {
			return r.Errorf(eofMessage)
		}
	}
}
