// Package cardcheck validates card numbers against a checksum and names the
// card network of the ones that pass.
package cardcheck

import (
	"fmt"
	"strings"

	"github.com/alovak/cardcheck/internal/cardnum"
	"golang.org/x/exp/slog"
)

// InvalidCard is what Result.String returns when no network matched.
const InvalidCard = "Invalid credit card"

// Mode selects the checksum algorithm.
type Mode int

const (
	// ModeLegacy doubles even-index digits from the left without folding and
	// takes the digit sum of the total.
	ModeLegacy Mode = iota
	// ModeLuhn is the canonical Luhn check.
	ModeLuhn
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeLuhn:
		return "luhn"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "legacy" and "luhn" (case-insensitive). Empty means legacy.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return ModeLegacy, nil
	case "luhn":
		return ModeLuhn, nil
	default:
		return 0, fmt.Errorf("unknown checksum mode %q (want legacy|luhn)", s)
	}
}

// Result is the outcome of one verification.
type Result struct {
	Network  Network
	Checksum int
	// Valid reports whether the checksum passed, regardless of the network.
	Valid bool
}

func (r Result) String() string {
	if r.Network == "" {
		return InvalidCard
	}
	return string(r.Network)
}

// Validator is stateless apart from its configuration and is safe for
// concurrent use.
type Validator struct {
	logger *slog.Logger
	mode   Mode
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func WithMode(mode Mode) Option {
	return func(v *Validator) { v.mode = mode }
}

func New(opts ...Option) *Validator {
	v := &Validator{mode: ModeLegacy}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Mode() Mode { return v.mode }

// Verify parses number and checks it. Malformed input is an error; a
// well-formed number that fails the checksum or matches no network is not.
func (v *Validator) Verify(number string) (Result, error) {
	d, err := cardnum.Parse(number)
	if err != nil {
		return Result{}, fmt.Errorf("parsing card number: %w", err)
	}
	return v.Check(d), nil
}

// VerifyNumber checks the decimal digits of n.
func (v *Validator) VerifyNumber(n uint64) Result {
	return v.Check(cardnum.FromUint64(n))
}

// Check runs the checksum over d and classifies it when the checksum passes.
// The checksum is logged before classification.
func (v *Validator) Check(d cardnum.Digits) Result {
	var res Result
	switch v.mode {
	case ModeLuhn:
		res.Checksum = cardnum.LuhnSum(d)
		res.Valid = cardnum.ValidLuhn(d)
	default:
		res.Checksum = cardnum.LegacyChecksum(d)
		res.Valid = len(d) > 0 && res.Checksum%10 == 0
	}

	logger := v.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("checksum computed",
		slog.Int("checksum", res.Checksum),
		slog.String("mode", v.mode.String()),
		slog.String("pan", cardnum.MaskPAN(d.String())),
	)

	if res.Valid {
		res.Network = Classify(d)
	}
	return res
}

var defaultValidator = New()

// Verify checks number with the legacy checksum and returns the network name
// or InvalidCard. Malformed input also yields InvalidCard.
func Verify(number string) string {
	res, err := defaultValidator.Verify(number)
	if err != nil {
		return InvalidCard
	}
	return res.String()
}
