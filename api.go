package rawproto

import (
	"github.com/rs/zerolog"

	"github.com/anirudhraja/rawproto/input"
	"github.com/anirudhraja/rawproto/view"
	"github.com/anirudhraja/rawproto/wire"
)

// ===== SCHEMA-LESS API =====

// Options configures a Decoder. The zero value decodes auto-detected text,
// leaves gRPC framing alone and nests up to wire.DefaultMaxDepth levels.
type Options struct {
	Format   input.Format
	GRPC     bool
	MaxDepth int

	// Logger receives debug events; nil disables logging.
	Logger *zerolog.Logger
}

// Decoder decodes protobuf bytes without a schema. It is immutable after New
// and safe for concurrent use.
type Decoder struct {
	format   input.Format
	grpc     bool
	maxDepth int
	log      zerolog.Logger
}

// New creates a Decoder from opts.
func New(opts Options) *Decoder {
	d := &Decoder{
		format:   opts.Format,
		grpc:     opts.GRPC,
		maxDepth: opts.MaxDepth,
		log:      zerolog.Nop(),
	}
	if d.format == "" {
		d.format = input.FormatAuto
	}
	if d.maxDepth <= 0 {
		d.maxDepth = wire.DefaultMaxDepth
	}
	if opts.Logger != nil {
		d.log = opts.Logger.With().Str("component", "decoder").Logger()
	}
	return d
}

// MaxDepth returns the effective nesting bound.
func (d *Decoder) MaxDepth() int { return d.maxDepth }

// Parse tokenizes raw bytes. It never fails: anything that cannot be
// tokenized ends up in the result's trailing bytes.
func (d *Decoder) Parse(data []byte) *wire.ParseResult {
	if d.grpc {
		h, rest, ok := input.SplitGRPC(data)
		if ok {
			if !h.Matches(len(rest)) {
				d.log.Debug().
					Uint32("declared", h.Length).
					Int("actual", len(rest)).
					Msg("grpc length mismatch")
			}
			if h.Compressed {
				d.log.Debug().Msg("grpc compressed flag set, decoding as is")
			}
			data = rest
		}
	}

	result := wire.Tokenize(data, 0, 0, d.maxDepth)
	if result.Stop != nil {
		d.log.Debug().
			Err(result.Stop).
			Int("fields", len(result.Fields)).
			Int("trailing", len(result.Trailing)).
			Msg("tokenizer stopped early")
	}
	return result
}

// ParseText normalizes hex or base64 text and tokenizes the bytes. The only
// error it returns is an *input.FormatError.
func (d *Decoder) ParseText(text string) (*wire.ParseResult, error) {
	data, err := input.Normalize(text, d.format)
	if err != nil {
		return nil, err
	}
	d.log.Debug().Int("bytes", len(data)).Str("format", string(d.format)).Msg("normalized input")
	return d.Parse(data), nil
}

// ===== CONVENIENCE FUNCTIONS =====

// Decode tokenizes raw bytes with opts.
func Decode(data []byte, opts Options) *wire.ParseResult {
	return New(opts).Parse(data)
}

// DecodeText normalizes and tokenizes text with opts.
func DecodeText(text string, opts Options) (*wire.ParseResult, error) {
	return New(opts).ParseText(text)
}

// ToCanonicalJSON returns the canonical ordered object for r.
func ToCanonicalJSON(r *wire.ParseResult) *view.Object {
	return view.CanonicalJSON(r)
}

// ExportJSON renders the canonical object as indented JSON.
func ExportJSON(r *wire.ParseResult) ([]byte, error) {
	return view.MarshalIndent(r)
}
