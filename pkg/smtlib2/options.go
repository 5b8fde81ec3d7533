package smtlib2

// Framing describes how responses of the solver are read.
type Framing int

const (
	// Framed reads complete responses. A model is read as the
	// first parenthesized response after get-model, preceding
	// acknowledgements are skipped.
	Framed Framing = iota
	// Raw reads a single chunk of output per response. For get-model
	// two chunks are read and the first one is discarded, which
	// matches the output framing of some solvers, only.
	Raw
)

func (f Framing) String() string {
	switch f {
	case Framed:
		return "framed"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

type options struct {
	framing Framing
}

type Option func(o *options)

func WithFraming(f Framing) Option {
	return func(o *options) {
		o.framing = f
	}
}
