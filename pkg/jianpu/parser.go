package jianpu

// ParseBar parses one bar's raw text into its ordered elements.
// barIndex is used only for error reporting.
//
// Whitespace and '|' are token delimiters and carry no structure. Any
// character sequence outside the grammar aborts the whole bar with a
// *ParseError identifying the offending substring.
func ParseBar(text string, barIndex int) (Bar, error) {
	p := &barParser{text: text, bar: barIndex}
	return p.parse()
}

type barParser struct {
	text string
	bar  int
	pos  int
}

func (p *barParser) parse() (Bar, error) {
	var bar Bar
	for {
		p.skipDelimiters()
		if p.pos >= len(p.text) {
			return bar, nil
		}
		switch p.text[p.pos] {
		case '(':
			elem, err := p.parseGroup()
			if err != nil {
				return Bar{}, err
			}
			bar.Elements = append(bar.Elements, elem)
		case ')':
			return Bar{}, p.errorAt(p.pos, ")", "unbalanced closing parenthesis")
		case ',':
			return Bar{}, p.errorAt(p.pos, ",", "comma outside a group")
		default:
			start := p.pos
			word := p.readWord()
			tok, err := p.parseToken(word, start)
			if err != nil {
				return Bar{}, err
			}
			bar.Elements = append(bar.Elements, Element{Tokens: []Token{tok}})
		}
	}
}

func (p *barParser) skipDelimiters() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '|':
			p.pos++
		default:
			return
		}
	}
}

// readWord consumes up to the next delimiter or parenthesis.
func (p *barParser) readWord() string {
	start := p.pos
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '|', '(', ')', ',':
			return p.text[start:p.pos]
		}
		p.pos++
	}
	return p.text[start:]
}

// parseGroup consumes a parenthesized group starting at p.pos.
func (p *barParser) parseGroup() (Element, error) {
	open := p.pos
	p.pos++ // consume '('
	var tokens []Token
	for {
		// skip separators inside the group
		for p.pos < len(p.text) {
			c := p.text[p.pos]
			if c == ' ' || c == '\t' || c == ',' {
				p.pos++
				continue
			}
			break
		}
		if p.pos >= len(p.text) {
			return Element{}, p.errorAt(open, p.text[open:], "unterminated group")
		}
		switch p.text[p.pos] {
		case ')':
			p.pos++
			if len(tokens) < 2 {
				return Element{}, p.errorAt(open, p.text[open:p.pos], "group needs at least 2 notes")
			}
			return Element{Tokens: tokens, Group: true}, nil
		case '(':
			return Element{}, p.errorAt(p.pos, "(", "groups do not nest")
		case '|':
			return Element{}, p.errorAt(p.pos, "|", "bar separator inside a group")
		default:
			start := p.pos
			word := p.readWord()
			tok, err := p.parseToken(word, start)
			if err != nil {
				return Element{}, err
			}
			tokens = append(tokens, tok)
		}
	}
}

// parseToken interprets a single bare word: "-", "0", or [hl]?[1-7]d?.
func (p *barParser) parseToken(word string, offset int) (Token, error) {
	if word == "-" {
		return Token{Kind: TokenExtend}, nil
	}
	if word == "0" {
		return Token{Kind: TokenRest}, nil
	}

	rest := word
	tok := Token{Kind: TokenNote, Octave: OctaveMid}
	switch {
	case len(rest) > 0 && rest[0] == 'h':
		tok.Octave = OctaveHigh
		rest = rest[1:]
	case len(rest) > 0 && rest[0] == 'l':
		tok.Octave = OctaveLow
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Token{}, p.errorAt(offset, word, "octave prefix without a degree")
	}
	if rest[0] < '1' || rest[0] > '7' {
		return Token{}, p.errorAt(offset, word, "expected scale degree 1-7")
	}
	tok.Degree = int(rest[0] - '0')
	rest = rest[1:]
	if rest == "d" {
		tok.Dotted = true
		rest = ""
	}
	if rest != "" {
		return Token{}, p.errorAt(offset, word, "trailing characters after note")
	}
	return tok, nil
}

func (p *barParser) errorAt(offset int, excerpt, reason string) *ParseError {
	return &ParseError{Bar: p.bar, Offset: offset, Excerpt: excerpt, Reason: reason}
}
