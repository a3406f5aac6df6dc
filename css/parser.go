package css

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses selector text back into selector values.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new selector parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("selector-parser")}
}

// token is a lexed selector token with its data materialized.
type token struct {
	tt   css.TokenType
	data string
}

// Parse parses a selector string into a Selector or, when combinators are
// present, a Combined. Compound selectors are fed through the builder, so
// malformed part order surfaces as OrderError/DuplicateError.
func (p *Parser) Parse(input string) (Stringifier, error) {
	p.log.Debug("Parsing selector", zap.String("input", input))

	toks, err := lex(input)
	if err != nil {
		return nil, err
	}

	pos := 0
	skipSpace(toks, &pos)
	if pos == len(toks) {
		return nil, fmt.Errorf("empty selector")
	}

	left, err := p.parseCompound(toks, &pos)
	if err != nil {
		return nil, err
	}
	var result Stringifier = left

	for pos < len(toks) {
		comb, more, err := parseCombinator(toks, &pos)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		right, err := p.parseCompound(toks, &pos)
		if err != nil {
			return nil, err
		}
		ls, err := result.Stringify()
		if err != nil {
			return nil, err
		}
		rs, err := right.Stringify()
		if err != nil {
			return nil, err
		}
		if comb == " " {
			// descendant combinator renders as a single space
			result = Combined{joined: ls + " " + rs}
		} else {
			result = Combined{joined: ls + " " + comb + " " + rs}
		}
	}

	if pos != len(toks) {
		return nil, fmt.Errorf("unexpected %q in selector %q", toks[pos].data, input)
	}

	out, err := result.Stringify()
	if err != nil {
		return nil, err
	}
	p.log.Debug("Parsed selector", zap.String("result", out))
	return result, nil
}

// lex tokenizes the input, dropping comments.
func lex(input string) ([]token, error) {
	l := css.NewLexer(parse.NewInput(strings.NewReader(input)))
	var toks []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("selector lexing failed: %w", l.Err())
			}
			return toks, nil
		}
		if tt == css.CommentToken {
			continue
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}

func skipSpace(toks []token, pos *int) {
	for *pos < len(toks) && toks[*pos].tt == css.WhitespaceToken {
		*pos++
	}
}

// parseCombinator consumes an optional combinator between two compound
// selectors. Returns the combinator (" ", ">", "+" or "~") and whether a
// following compound selector is expected.
func parseCombinator(toks []token, pos *int) (string, bool, error) {
	sawSpace := false
	for *pos < len(toks) && toks[*pos].tt == css.WhitespaceToken {
		sawSpace = true
		*pos++
	}
	if *pos == len(toks) {
		return "", false, nil
	}
	t := toks[*pos]
	if t.tt == css.DelimToken && (t.data == ">" || t.data == "+" || t.data == "~") {
		*pos++
		skipSpace(toks, pos)
		if *pos == len(toks) {
			return "", false, fmt.Errorf("selector ends after combinator %q", t.data)
		}
		return t.data, true, nil
	}
	if sawSpace {
		return " ", true, nil
	}
	return "", false, nil
}

// parseCompound parses one compound selector (no combinators) by feeding
// parts to the builder in token order.
func (p *Parser) parseCompound(toks []token, pos *int) (Selector, error) {
	var sel Selector
	started := false

	for *pos < len(toks) {
		t := toks[*pos]
		switch {
		case t.tt == css.WhitespaceToken:
			return finishCompound(sel, started)

		case t.tt == css.IdentToken:
			sel = sel.Element(t.data)
			*pos++

		case t.tt == css.DelimToken && t.data == "*":
			sel = sel.Element("*")
			*pos++

		case t.tt == css.HashToken:
			sel = sel.ID(strings.TrimPrefix(t.data, "#"))
			*pos++

		case t.tt == css.DelimToken && t.data == ".":
			*pos++
			if *pos == len(toks) || toks[*pos].tt != css.IdentToken {
				return Selector{}, fmt.Errorf("expected class name after %q", ".")
			}
			sel = sel.Class(toks[*pos].data)
			*pos++

		case t.tt == css.LeftBracketToken:
			raw, err := collectBracketed(toks, pos)
			if err != nil {
				return Selector{}, err
			}
			sel = sel.Attr(raw)

		case t.tt == css.ColonToken:
			*pos++
			pseudoElement := false
			if *pos < len(toks) && toks[*pos].tt == css.ColonToken {
				pseudoElement = true
				*pos++
			}
			name, err := collectPseudoName(toks, pos)
			if err != nil {
				return Selector{}, err
			}
			if pseudoElement {
				sel = sel.PseudoElement(name)
			} else {
				sel = sel.PseudoClass(name)
			}

		default:
			return finishCompound(sel, started)
		}
		started = true
	}
	return finishCompound(sel, started)
}

func finishCompound(sel Selector, started bool) (Selector, error) {
	if !started {
		return Selector{}, fmt.Errorf("expected selector part")
	}
	if err := sel.Err(); err != nil {
		return Selector{}, err
	}
	return sel, nil
}

// collectBracketed consumes "[" ... "]" and returns the raw text between the
// brackets, tokens concatenated verbatim.
func collectBracketed(toks []token, pos *int) (string, error) {
	*pos++ // consume "["
	var b strings.Builder
	for *pos < len(toks) {
		t := toks[*pos]
		if t.tt == css.RightBracketToken {
			*pos++
			return b.String(), nil
		}
		b.WriteString(t.data)
		*pos++
	}
	return "", fmt.Errorf("unterminated attribute selector")
}

// collectPseudoName consumes a pseudo-class or pseudo-element name,
// including a functional form like nth-child(2).
func collectPseudoName(toks []token, pos *int) (string, error) {
	if *pos == len(toks) {
		return "", fmt.Errorf("expected pseudo name after %q", ":")
	}
	t := toks[*pos]
	switch t.tt {
	case css.IdentToken:
		*pos++
		return t.data, nil
	case css.FunctionToken:
		// data is "name(", collect until the matching ")"
		var b strings.Builder
		b.WriteString(t.data)
		*pos++
		depth := 1
		for *pos < len(toks) && depth > 0 {
			switch toks[*pos].tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			b.WriteString(toks[*pos].data)
			*pos++
		}
		if depth != 0 {
			return "", fmt.Errorf("unterminated functional pseudo %q", t.data)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("expected pseudo name, got %q", t.data)
	}
}
