package options

// DefaultOptions keeps correction conservative: distance-1 candidates are
// strongly preferred and frequency differences are flattened so that rare
// but close words still win over common distant ones.
var DefaultOptions = DictOptions{
	MaxEditDistance: 2,
	FreqTemperature: 2.0,
	BetaWeight:      1.0,
	LambdaPenalty:   0.9,
	TransposeCost:   0.6,
	NeighborInsDel:  0.9,
	KeyboardNearSub: 0.6,
	Alphabet:        "abcdefghijklmnopqrstuvwxyz",
}

type DictOptions struct {
	MaxEditDistance int
	FreqTemperature float64
	BetaWeight      float64
	LambdaPenalty   float64
	TransposeCost   float64
	NeighborInsDel  float64
	KeyboardNearSub float64
	Alphabet        string
}

type Options interface {
	Apply(options *DictOptions)
}

type FuncConfig struct {
	ops func(options *DictOptions)
}

func (w FuncConfig) Apply(conf *DictOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *DictOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithFreqTemperature(temperature float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.FreqTemperature = temperature
	})
}

func WithBetaWeight(beta float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.BetaWeight = beta
	})
}

func WithLambdaPenalty(lambda float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.LambdaPenalty = lambda
	})
}

func WithTransposeCost(cost float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.TransposeCost = cost
	})
}

func WithNeighborInsDel(cost float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.NeighborInsDel = cost
	})
}

func WithKeyboardNearSub(cost float64) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.KeyboardNearSub = cost
	})
}

// WithAlphabet sets the character set used to generate correction candidates.
func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *DictOptions) {
		options.Alphabet = alphabet
	})
}

// WithStrictCorrection limits candidates to a single edit, for inputs where
// distance-2 rewrites do more harm than good.
func WithStrictCorrection() Options {
	return NewFuncOption(func(options *DictOptions) {
		options.MaxEditDistance = 1
	})
}
