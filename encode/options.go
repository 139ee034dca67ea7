// Package encode renders a constructed tree (package x12) back to wire
// bytes: a pre-order traversal emitting each segment's id, its elements
// joined by the element separator (composites by the component
// separator, repetitions by the repetition separator), terminated by the
// segment separator, honoring whatever Separators the tree carries.
package encode

// encoderConfig holds the writer's tunables.
type encoderConfig struct {
	omitTrailingEmpty bool
}

func defaultConfig() encoderConfig {
	return encoderConfig{omitTrailingEmpty: true}
}

// EncoderOption is a functional option for configuring a writer.
type EncoderOption func(*encoderConfig)

// WithOmitTrailingEmpty controls whether trailing Empty elements in a
// segment are dropped (spec.md §4.7: only trailing Empty elements may be
// omitted, never one in the middle that would shift positions). Default
// true.
func WithOmitTrailingEmpty(omit bool) EncoderOption {
	return func(c *encoderConfig) {
		c.omitTrailingEmpty = omit
	}
}
