package face

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
)

// DefaultMargin is the offset HalveAndOffset adds after halving.
const DefaultMargin = 50

var (
	errNotNumber    = errors.New("coordinate is not a number")
	errNoMessage    = errors.New("record has no message")
	errMissingLabel = errors.New("record is missing a required label")
)

// Normalizer maps a raw coordinate into display space.
type Normalizer func(KeyPoint) KeyPoint

// HalveAndOffset shrinks raw coordinates by half and shifts them by margin, leaving
// room for jitter around a face drawn from full-surface coordinates.
func HalveAndOffset(margin int) Normalizer {
	return func(p KeyPoint) KeyPoint {
		return KeyPoint{X: p.X/2 + margin, Y: p.Y/2 + margin}
	}
}

// Identity leaves coordinates untouched.
func Identity(p KeyPoint) KeyPoint { return p }

type loadOptions struct {
	normalize Normalizer
	required  []string
	log       *slog.Logger
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithNormalizer replaces the default HalveAndOffset(DefaultMargin).
func WithNormalizer(n Normalizer) LoadOption {
	return func(o *loadOptions) {
		if n != nil {
			o.normalize = n
		}
	}
}

// WithRequiredLabels rejects records that lack any of labels.
func WithRequiredLabels(labels ...string) LoadOption {
	return func(o *loadOptions) { o.required = append(o.required, labels...) }
}

// WithLogger reports skipped lines and the load summary to l.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) { o.log = l }
}

// Load parses records from r, one per line, skipping lines that do not parse.
//
// Only a read error from r fails the load. A source with no usable lines yields an
// empty set; asking it for a pose returns ErrEmptySet.
func Load(r io.Reader, opts ...LoadOption) (*Set, error) {
	o := loadOptions{normalize: HalveAndOffset(DefaultMargin)}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	br := bufio.NewReader(r)

	var (
		set     Set
		lineNo  int
		skipped int
	)
	for {
		raw, readErr := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineNo++
			line := bytes.TrimSpace(raw)
			if len(line) > 0 {
				rec, err := parseRecord(line, &o)
				if err != nil {
					skipped++
					log.Warn("face: skipping malformed line", "line", lineNo, "err", err)
				} else {
					set.records = append(set.records, rec)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("face: read: %w", readErr)
		}
	}

	log.Info("face: loaded poses", "records", len(set.records), "skipped", skipped)
	return &set, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...LoadOption) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("face: open %s: %w", path, err)
	}
	defer f.Close()

	set, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

type rawRecord struct {
	Level   string      `json:"level"`
	Message *rawMessage `json:"message"`
}

type rawMessage struct {
	Emo    string              `json:"emo"`
	Points map[string]rawPoint `json:"points"`
}

type rawPoint struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

func parseRecord(line []byte, o *loadOptions) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return Record{}, err
	}
	if raw.Message == nil {
		return Record{}, errNoMessage
	}

	pose := make(Pose, len(raw.Message.Points))
	for label, rp := range raw.Message.Points {
		x, err := coord(rp.X)
		if err != nil {
			return Record{}, fmt.Errorf("%s.x: %w", label, err)
		}
		y, err := coord(rp.Y)
		if err != nil {
			return Record{}, fmt.Errorf("%s.y: %w", label, err)
		}
		pose[label] = o.normalize(KeyPoint{X: x, Y: y})
	}
	for _, l := range o.required {
		if _, ok := pose[l]; !ok {
			return Record{}, fmt.Errorf("%w: %q", errMissingLabel, l)
		}
	}

	return Record{Level: raw.Level, Mood: raw.Message.Emo, Pose: pose}, nil
}

// coord decodes an integer or float JSON number, rounding floats half away from zero.
func coord(b json.RawMessage) (int, error) {
	if len(b) == 0 || b[0] == '"' {
		return 0, errNotNumber
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return 0, errNotNumber
	}
	if i, err := n.Int64(); err == nil {
		return clampInt(i), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	f = math.Round(f)
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	if f < math.MinInt32 {
		return math.MinInt32, nil
	}
	return int(f), nil
}

func clampInt(i int64) int {
	if i > math.MaxInt32 {
		return math.MaxInt32
	}
	if i < math.MinInt32 {
		return math.MinInt32
	}
	return int(i)
}
