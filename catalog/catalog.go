package catalog

import (
	"github.com/rs/zerolog"

	"github.com/dshills/gox12/schema"
)

// catalogConfig holds Catalog construction tunables.
type catalogConfig struct {
	logger zerolog.Logger
}

func defaultConfig() catalogConfig {
	return catalogConfig{logger: zerolog.Nop()}
}

// CatalogOption configures a Catalog at construction time.
type CatalogOption func(*catalogConfig)

// WithLogger attaches a logger that lookup misses (an unknown version,
// functional-group code, or transaction-set code) are written to.
// Without this option the Catalog logs nothing.
func WithLogger(logger zerolog.Logger) CatalogOption {
	return func(c *catalogConfig) {
		c.logger = logger
	}
}

// sampleCatalog implements schema.Catalog over the envelope segments plus
// the 850 and 997 sample transaction sets defined in this package.
type sampleCatalog struct {
	logger zerolog.Logger
}

// New builds the sample Catalog described in SPEC_FULL.md: a single
// interchange version ("00501") carrying an 850 Purchase Order under
// functional-group code "PO" and a 997 Functional Acknowledgment under
// "FA".
func New(opts ...CatalogOption) schema.Catalog {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &sampleCatalog{logger: cfg.logger}
}

func (c *sampleCatalog) InterchangeDef(version string) (*schema.InterchangeDef, error) {
	if version != sampleVersion {
		c.logger.Warn().Str("version", version).Msg("catalog: unknown interchange version requested")
		return nil, &schema.NotFoundError{Kind: "interchange", ID: version}
	}
	return sampleInterchangeDef, nil
}

func (c *sampleCatalog) FunctionalGroupDef(version, fgCode string) (*schema.FunctionalGroupDef, error) {
	if version != sampleVersion {
		return nil, &schema.NotFoundError{Kind: "functional group", ID: version + "/" + fgCode}
	}
	switch fgCode {
	case "PO":
		return samplePOGroupDef, nil
	case "FA":
		return sampleFAGroupDef, nil
	default:
		c.logger.Warn().Str("code", fgCode).Msg("catalog: unknown functional group code requested")
		return nil, &schema.NotFoundError{Kind: "functional group", ID: fgCode}
	}
}

func (c *sampleCatalog) TransactionSetDef(version, tsCode string) (*schema.TransactionSetDef, error) {
	if version != sampleVersion {
		return nil, &schema.NotFoundError{Kind: "transaction set", ID: version + "/" + tsCode}
	}
	switch tsCode {
	case "850":
		return po850Def, nil
	case "997":
		return fa997Def, nil
	default:
		c.logger.Warn().Str("code", tsCode).Msg("catalog: unknown transaction set code requested")
		return nil, &schema.NotFoundError{Kind: "transaction set", ID: tsCode}
	}
}

func (c *sampleCatalog) SegmentDict(version string) (*schema.SegmentDict, error) {
	if version != sampleVersion {
		return nil, &schema.NotFoundError{Kind: "segment dictionary", ID: version}
	}
	return sampleDict, nil
}

func (c *sampleCatalog) ElementDef(id string) (*schema.ElementDef, error) {
	def, ok := elementTable[id]
	if !ok {
		return nil, &schema.NotFoundError{Kind: "element", ID: id}
	}
	return def, nil
}
