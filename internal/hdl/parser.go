package hdl

import (
	"strconv"

	"github.com/n2t/hwsim/internal/lex"
)

func parseUint(s string) (int64, error) {
	if len(s) > 18 {
		return 0, strconv.ErrRange
	}
	return strconv.ParseInt(s, 10, 64)
}

const maxBitIndex = 0xFFFF // u16 max, per spec: indices/widths fit in u16

// Parser parses a single HDL chip declaration from source text.
type Parser struct {
	l   lex.Interface
	cur lex.Item
	src string
}

// NewParser returns a parser over src.
func NewParser(src string) *Parser {
	return &Parser{l: Lexer(src), src: src}
}

// Parse parses src as a single CHIP declaration and returns its AST, or a
// *ParseError.
func Parse(src string) (*ChipDecl, error) {
	p := NewParser(src)
	return p.ParseChip()
}

func (p *Parser) advance() lex.Item {
	i := p.cur
	p.cur = p.l.Lex()
	return i
}

func (p *Parser) peek() lex.Item {
	return p.cur
}

// init primes the one-token lookahead buffer; must be called once before
// any other Parser method.
func (p *Parser) init() {
	p.cur = p.l.Lex()
}

func (p *Parser) badSymbolCheck(i lex.Item) error {
	if i.Type == lex.EOF {
		if bs, ok := i.Value.(badSymbolItem); ok {
			return parseErr(i.Pos, BadSymbol, "unexpected symbol "+string(rune(bs)))
		}
	}
	return nil
}

func (p *Parser) expect(t lex.Type, what string) (lex.Item, error) {
	i := p.advance()
	if err := p.badSymbolCheck(i); err != nil {
		return i, err
	}
	if i.Type != t {
		return i, parseErr(i.Pos, BadSymbol, "expected "+what+", got "+i.String())
	}
	return i, nil
}

func (p *Parser) expectIdent() (string, lex.Pos, error) {
	i, err := p.expect(Ident, "identifier")
	if err != nil {
		return "", i.Pos, err
	}
	return i.Value.(string), i.Pos, nil
}

// expectKeyword consumes the next token, requiring it to be the Ident
// keyword kw.
func (p *Parser) expectKeyword(kw string) (lex.Pos, error) {
	name, pos, err := p.expectIdent()
	if err != nil {
		return pos, err
	}
	if name != kw {
		return pos, parseErr(pos, BadSymbol, "expected keyword "+kw+", got "+name)
	}
	return pos, nil
}

func isReserved(name string) bool {
	return name == kwTrue || name == kwFalse
}

func (p *Parser) expectName() (string, lex.Pos, error) {
	name, pos, err := p.expectIdent()
	if err != nil {
		return "", pos, err
	}
	if isReserved(name) {
		return "", pos, parseErr(pos, BadName, "'"+name+"' is reserved and cannot be used as a name")
	}
	return name, pos, nil
}

func (p *Parser) expectUint() (uint16, error) {
	i := p.advance()
	if err := p.badSymbolCheck(i); err != nil {
		return 0, err
	}
	if i.Type != Int {
		return 0, parseErr(i.Pos, BadSymbol, "expected integer, got "+i.String())
	}
	if ne, ok := i.Value.(numError); ok {
		return 0, parseErr(i.Pos, NumberError, ne.err.Error())
	}
	v := i.Value.(int64)
	if v < 0 || v > maxBitIndex {
		return 0, parseErr(i.Pos, NumberOverflow, "value out of range for a 16-bit index")
	}
	return uint16(v), nil
}

// ParseChip parses a "CHIP Name { IN ...; OUT ...; <body> }" declaration.
func (p *Parser) ParseChip() (*ChipDecl, error) {
	p.init()
	startPos, err := p.expectKeyword(kwChip)
	if err != nil {
		return nil, err
	}
	name, _, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LBrace, "'{'"); err != nil {
		return nil, err
	}
	inPins, err := p.parsePinDecl(kwIn)
	if err != nil {
		return nil, err
	}
	outPins, err := p.parsePinDecl(kwOut)
	if err != nil {
		return nil, err
	}
	impl, err := p.parseImplementation()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBrace, "'}'"); err != nil {
		return nil, err
	}
	if err := p.badSymbolCheck(p.peek()); err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != lex.EOF {
		return nil, parseErr(tok.Pos, BadSymbol, "unexpected "+tok.String()+" after end of chip")
	}
	return &ChipDecl{Name: name, InPins: inPins, OutPins: outPins, Impl: impl, Pos: startPos}, nil
}

// parsePinDecl parses "IN ChannelList ;" or "OUT ChannelList ;".
func (p *Parser) parsePinDecl(kw string) ([]Channel, error) {
	if _, err := p.expectKeyword(kw); err != nil {
		return nil, err
	}
	var chans []Channel
	for {
		name, pos, err := p.expectName()
		if err != nil {
			return nil, err
		}
		width := uint16(1)
		if p.peek().Type == LBracket {
			p.advance()
			width, err = p.expectUint()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RBracket, "']'"); err != nil {
				return nil, err
			}
		}
		chans = append(chans, Channel{Name: name, Width: width, Pos: pos})
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(Semi, "';'"); err != nil {
		return nil, err
	}
	return chans, nil
}

func (p *Parser) parseImplementation() (Implementation, error) {
	tok := p.peek()
	if tok.Type != Ident {
		return nil, parseErr(tok.Pos, BadImplementation, "expected BUILTIN or PARTS:")
	}
	switch tok.Value.(string) {
	case kwBuiltin:
		return p.parseBuiltin()
	case kwParts:
		return p.parseNative()
	default:
		return nil, parseErr(tok.Pos, BadImplementation, "expected BUILTIN or PARTS:, got "+tok.Value.(string))
	}
}

func (p *Parser) parseBuiltin() (Implementation, error) {
	if _, err := p.expectKeyword(kwBuiltin); err != nil {
		return nil, err
	}
	name, _, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semi, "';'"); err != nil {
		return nil, err
	}
	var clocked []string
	if tok := p.peek(); tok.Type == Ident && tok.Value.(string) == kwClocked {
		p.advance()
		for {
			pin, _, err := p.expectName()
			if err != nil {
				return nil, err
			}
			clocked = append(clocked, pin)
			if p.peek().Type == Comma {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(Semi, "';'"); err != nil {
			return nil, err
		}
	}
	return &Builtin{Name: name, Clocked: clocked}, nil
}

func (p *Parser) parseNative() (Implementation, error) {
	if _, err := p.expectKeyword(kwParts); err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon, "':'"); err != nil {
		return nil, err
	}
	var parts []PartInstance
	for {
		part, err := p.parsePartInstance()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if p.peek().Type == RBrace {
			break
		}
	}
	return &Native{Parts: parts}, nil
}

func (p *Parser) parsePartInstance() (PartInstance, error) {
	name, pos, err := p.expectName()
	if err != nil {
		return PartInstance{}, err
	}
	if _, err := p.expect(LParen, "'('"); err != nil {
		return PartInstance{}, err
	}
	var args []Argument
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return PartInstance{}, err
		}
		args = append(args, arg)
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(RParen, "')'"); err != nil {
		return PartInstance{}, err
	}
	if _, err := p.expect(Semi, "';'"); err != nil {
		return PartInstance{}, err
	}
	return PartInstance{SubChip: name, Args: args, Pos: pos}, nil
}

func (p *Parser) parseArgument() (Argument, error) {
	internal, pos, err := p.expectName()
	if err != nil {
		return Argument{}, err
	}
	bus, err := p.maybeRange()
	if err != nil {
		return Argument{}, err
	}
	if _, err := p.expect(Equal, "'='"); err != nil {
		return Argument{}, err
	}
	ext, err := p.parseExternal()
	if err != nil {
		return Argument{}, err
	}
	return Argument{Internal: internal, InternalBus: bus, External: ext, Pos: pos}, nil
}

func (p *Parser) parseExternal() (ArgExternal, error) {
	tok := p.peek()
	if tok.Type == Int {
		p.advance()
		if ne, ok := tok.Value.(numError); ok {
			return nil, parseErr(tok.Pos, NumberError, ne.err.Error())
		}
		v := tok.Value.(int64)
		if v < 0 || v > maxBitIndex {
			return nil, parseErr(tok.Pos, NumberOverflow, "value out of range for a 16-bit constant")
		}
		// numeric literals parse successfully here; elaboration rejects them
		// as pin drivers (only true/false constants and pin references are
		// supported driver values).
		return ExtNumber(v), nil
	}
	if tok.Type != Ident {
		return nil, parseErr(tok.Pos, BadSymbol, "expected pin name, true, false or a number")
	}
	name := tok.Value.(string)
	switch name {
	case kwTrue:
		p.advance()
		return ExtBool(true), nil
	case kwFalse:
		p.advance()
		return ExtBool(false), nil
	default:
		p.advance()
		bus, err := p.maybeRange()
		if err != nil {
			return nil, err
		}
		return ExtName{Name: name, Bus: bus}, nil
	}
}

// maybeRange parses an optional "[start]" or "[start..end]" selector.
func (p *Parser) maybeRange() (*Range, error) {
	if p.peek().Type != LBracket {
		return nil, nil
	}
	rangePos := p.peek().Pos
	p.advance()
	start, err := p.expectUint()
	if err != nil {
		return nil, err
	}
	end := start
	if p.peek().Type == DotDot {
		p.advance()
		end, err = p.expectUint()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBracket, "']'"); err != nil {
		return nil, err
	}
	if end < start {
		return nil, parseErr(rangePos, NumberError, "range end before start")
	}
	return &Range{Start: start, End: end}, nil
}
