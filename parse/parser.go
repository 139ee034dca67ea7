package parse

import (
	"context"
	"fmt"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/tokenize"
	"github.com/dshills/gox12/x12"
)

// Parser drives a schema-directed parse of one interchange's bytes.
type Parser interface {
	// Parse parses data into a tree under interchangeDef, consulting
	// catalog for the functional-group and transaction-set shapes it
	// references. It never returns a fatal error for structural problems;
	// those accumulate in the returned StructuralError list. A non-nil
	// error return means MalformedHeader or InvalidSchemaError.
	Parse(data []byte, interchangeDef *schema.InterchangeDef, catalog schema.Catalog) (*x12.InterchangeVal, []*StructuralError, error)
	// ParseContext is Parse with cancellation support: the caller's ctx is
	// checked between top-level segments (functional groups), since that
	// is the natural granularity at which a large interchange can be
	// abandoned cleanly.
	ParseContext(ctx context.Context, data []byte, interchangeDef *schema.InterchangeDef, catalog schema.Catalog) (*x12.InterchangeVal, []*StructuralError, error)
}

type parser struct {
	config parserConfig
}

// New creates a Parser configured by opts.
func New(opts ...ParserOption) Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{config: cfg}
}

func (p *parser) Parse(data []byte, def *schema.InterchangeDef, catalog schema.Catalog) (*x12.InterchangeVal, []*StructuralError, error) {
	return p.ParseContext(context.Background(), data, def, catalog)
}

func (p *parser) ParseContext(ctx context.Context, data []byte, def *schema.InterchangeDef, catalog schema.Catalog) (*x12.InterchangeVal, []*StructuralError, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("%w: %v", ErrContextCanceled, ctx.Err())
	default:
	}

	toks, sep, err := tokenize.Tokenize(data)
	if err != nil {
		return nil, nil, err
	}
	if len(toks) > p.config.maxSegments {
		toks = toks[:p.config.maxSegments]
	}

	var errs []*StructuralError
	c := &cursor{toks: toks}

	header, ok := c.peek()
	if !ok || header.ID != "ISA" {
		errs = append(errs, missingMandatory("ISA", x12.Position{}))
		return x12.NewInterchangeVal(def, sep, x12.Position{}, nil, nil, nil), errs, nil
	}
	for _, kind := range structuralIssuesForToken(header) {
		errs = append(errs, kind)
	}
	isaVal := buildSegmentVal(header, def.Header, &errs)
	c.next()

	var groups []*x12.FunctionalGroupVal
	var trailer *x12.SegmentVal

	for {
		select {
		case <-ctx.Done():
			return x12.NewInterchangeVal(def, sep, header.Position, isaVal, trailer, groups),
				append(errs, missingMandatory("IEA", x12.Position{})), nil
		default:
		}

		tok, ok := c.peek()
		if !ok {
			errs = append(errs, missingMandatory("IEA", x12.Position{}))
			break
		}
		switch tok.ID {
		case "IEA":
			trailer = buildSegmentVal(tok, def.Trailer, &errs)
			c.next()
			return x12.NewInterchangeVal(def, sep, header.Position, isaVal, trailer, groups), errs, nil
		case "GS":
			g, err := parseFunctionalGroup(c, catalog, def.Version, &errs)
			if err != nil {
				errs = append(errs, err.(*StructuralError))
				continue
			}
			groups = append(groups, g)
		default:
			errs = append(errs, unexpectedSegment(tok.ID, tok.Position))
			c.next()
		}
	}

	return x12.NewInterchangeVal(def, sep, header.Position, isaVal, trailer, groups), errs, nil
}

func structuralIssuesForToken(tok tokenize.SegmentTok) []*StructuralError {
	if tok.Unknown {
		return []*StructuralError{unknownSegment(tok.ID, tok.Position)}
	}
	return nil
}

func parseFunctionalGroup(c *cursor, catalog schema.Catalog, version string, errs *[]*StructuralError) (*x12.FunctionalGroupVal, error) {
	gsTok, _ := c.peek()
	fgCode := firstElement(gsTok)
	fgDef, err := catalog.FunctionalGroupDef(version, fgCode)
	if err != nil {
		c.next()
		return nil, unexpectedSegment(gsTok.ID, gsTok.Position)
	}
	gsVal := buildSegmentVal(gsTok, fgDef.Header, errs)
	c.next()

	var transactionSets []*x12.TransactionSetVal
	var geVal *x12.SegmentVal

	for {
		tok, ok := c.peek()
		if !ok {
			*errs = append(*errs, missingMandatory("GE", gsTok.Position))
			break
		}
		switch tok.ID {
		case "GE":
			geVal = buildSegmentVal(tok, fgDef.Trailer, errs)
			c.next()
			return x12.NewFunctionalGroupVal(fgDef, gsTok.Position, gsVal, geVal, transactionSets), nil
		case "ST":
			ts, stErr := parseTransactionSet(c, catalog, version, errs)
			if stErr != nil {
				*errs = append(*errs, stErr.(*StructuralError))
				continue
			}
			transactionSets = append(transactionSets, ts)
		default:
			*errs = append(*errs, unexpectedSegment(tok.ID, tok.Position))
			c.next()
		}
	}

	return x12.NewFunctionalGroupVal(fgDef, gsTok.Position, gsVal, geVal, transactionSets), nil
}

func parseTransactionSet(c *cursor, catalog schema.Catalog, version string, errs *[]*StructuralError) (*x12.TransactionSetVal, error) {
	stTok, _ := c.peek()
	tsCode := firstElement(stTok)
	tsDef, err := catalog.TransactionSetDef(version, tsCode)
	if err != nil {
		c.next()
		return nil, unexpectedSegment(stTok.ID, stTok.Position)
	}
	stVal := buildSegmentVal(stTok, tsDef.Header, errs)
	c.next()

	body := parseBody(tsDef, c, map[string]bool{"SE": true, "GE": true, "IEA": true}, errs)

	tok, ok := c.peek()
	var seVal *x12.SegmentVal
	if ok && tok.ID == "SE" {
		seVal = buildSegmentVal(tok, tsDef.Trailer, errs)
		c.next()
	} else {
		*errs = append(*errs, missingMandatory("SE", stTok.Position))
	}

	return x12.NewTransactionSetVal(tsDef, stTok.Position, stVal, seVal, body), nil
}

func firstElement(tok tokenize.SegmentTok) string {
	if len(tok.Elements) == 0 {
		return ""
	}
	simple := tok.Elements[0].Simple()
	if len(simple) == 0 {
		return ""
	}
	return simple[0]
}
