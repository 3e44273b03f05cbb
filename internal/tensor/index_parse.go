package tensor

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/eapache/queue"
)

type tokenKind uint8

const (
	tokInt tokenKind = iota
	tokColon
	tokComma
	tokEllipsis
	tokNone
	tokTrue
	tokFalse
	tokLBracket
	tokRBracket
)

type token struct {
	kind tokenKind
	n    int
	pos  int
}

// ParseIndex parses an index expression written in NumPy syntax, for example
// "1:-1, ::2", "..., -1", "None, :" or ":, [0, 2]". Lists of integers become
// integer-array terms and lists of True/False become boolean masks.
func ParseIndex(expr string) ([]Index, error) {
	q, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	var terms []Index
	for q.Length() > 0 {
		term, err := parseTerm(q)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		if q.Length() == 0 {
			break
		}
		tok := q.Remove().(token)
		if tok.kind != tokComma {
			return nil, newError("parse_index", ErrInvalidArgument, "expected ',' at offset %d", tok.pos)
		}
	}
	return terms, nil
}

func tokenize(expr string) (*queue.Queue, error) {
	q := queue.New()
	for i := 0; i < len(expr); {
		c := rune(expr[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == ':':
			q.Add(token{kind: tokColon, pos: i})
			i++
		case c == ',':
			q.Add(token{kind: tokComma, pos: i})
			i++
		case c == '[':
			q.Add(token{kind: tokLBracket, pos: i})
			i++
		case c == ']':
			q.Add(token{kind: tokRBracket, pos: i})
			i++
		case strings.HasPrefix(expr[i:], "..."):
			q.Add(token{kind: tokEllipsis, pos: i})
			i += 3
		case c == '-' || c == '+' || unicode.IsDigit(c):
			j := i + 1
			for j < len(expr) && unicode.IsDigit(rune(expr[j])) {
				j++
			}
			n, err := strconv.Atoi(expr[i:j])
			if err != nil {
				return nil, newError("parse_index", ErrInvalidArgument, "bad integer %q at offset %d", expr[i:j], i)
			}
			q.Add(token{kind: tokInt, n: n, pos: i})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(expr) && (unicode.IsLetter(rune(expr[j])) || expr[j] == '.') {
				j++
			}
			switch word := expr[i:j]; word {
			case "None", "newaxis", "np.newaxis":
				q.Add(token{kind: tokNone, pos: i})
			case "True":
				q.Add(token{kind: tokTrue, pos: i})
			case "False":
				q.Add(token{kind: tokFalse, pos: i})
			default:
				return nil, newError("parse_index", ErrInvalidArgument, "unknown name %q at offset %d", word, i)
			}
			i = j
		default:
			return nil, newError("parse_index", ErrInvalidArgument, "unexpected %q at offset %d", c, i)
		}
	}
	return q, nil
}

func parseTerm(q *queue.Queue) (Index, error) {
	head := q.Peek().(token)
	switch head.kind {
	case tokEllipsis:
		q.Remove()
		return Ellipsis(), nil
	case tokNone:
		q.Remove()
		return NewAxis(), nil
	case tokLBracket:
		q.Remove()
		return parseList(q, head.pos)
	case tokTrue, tokFalse:
		return Index{}, newError("parse_index", ErrInvalidArgument,
			"0-d boolean index at offset %d is not supported, use a list such as [True]", head.pos)
	}

	var parts [3]*int
	pos, colons := 0, 0
	for q.Length() > 0 {
		tok := q.Peek().(token)
		if tok.kind == tokInt {
			if parts[pos] != nil {
				return Index{}, newError("parse_index", ErrInvalidArgument, "unexpected integer at offset %d", tok.pos)
			}
			n := tok.n
			parts[pos] = &n
		} else if tok.kind == tokColon {
			colons++
			pos++
			if pos > 2 {
				return Index{}, newError("parse_index", ErrInvalidArgument, "too many ':' at offset %d", tok.pos)
			}
		} else {
			break
		}
		q.Remove()
	}
	if colons == 0 {
		if parts[0] == nil {
			return Index{}, newError("parse_index", ErrInvalidArgument, "empty index term at offset %d", head.pos)
		}
		return Int(*parts[0]), nil
	}
	return SliceOf(parts[0], parts[1], parts[2]), nil
}

func parseList(q *queue.Queue, start int) (Index, error) {
	var (
		ints  []int
		bools []bool
	)
	for {
		if q.Length() == 0 {
			return Index{}, newError("parse_index", ErrInvalidArgument, "unclosed '[' at offset %d", start)
		}
		tok := q.Remove().(token)
		switch tok.kind {
		case tokRBracket:
			if bools != nil && ints != nil {
				return Index{}, newError("parse_index", ErrInvalidArgument, "mixed list at offset %d", start)
			}
			if bools != nil {
				return Bools(bools...), nil
			}
			return Ints(ints...), nil
		case tokComma:
		case tokInt:
			ints = append(ints, tok.n)
		case tokTrue, tokFalse:
			bools = append(bools, tok.kind == tokTrue)
		default:
			return Index{}, newError("parse_index", ErrInvalidArgument, "unexpected token in list at offset %d", tok.pos)
		}
	}
}
