package verifier

import (
	"errors"
	"fmt"

	"github.com/alovak/cardcheck/internal/cardcheck"
	"github.com/alovak/cardcheck/internal/cardnum"
	"github.com/alovak/cardcheck/internal/isomsg"
	"github.com/alovak/cardcheck/verifier/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// ErrBadInput marks requests that carry no usable card number.
var ErrBadInput = errors.New("bad input")

type Service struct {
	validator *cardcheck.Validator
	hashKey   []byte
	logger    *slog.Logger
}

func NewService(logger *slog.Logger, cfg *Config) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	mode, err := cardcheck.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return &Service{
		validator: cardcheck.New(cardcheck.WithLogger(logger), cardcheck.WithMode(mode)),
		hashKey:   []byte(cfg.PANHashKey),
		logger:    logger,
	}, nil
}

func (s *Service) Verify(number string) (*models.Verification, error) {
	d, err := cardnum.Parse(number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return s.check(d), nil
}

// VerifyISO8583 verifies the PAN carried in field 2 of raw.
func (s *Service) VerifyISO8583(raw []byte) (*models.Verification, error) {
	mti, pan, err := isomsg.Unpack(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	d, err := cardnum.Parse(pan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	v := s.check(d)
	v.MTI = mti
	return v, nil
}

func (s *Service) check(d cardnum.Digits) *models.Verification {
	res := s.validator.Check(d)
	pan := d.String()
	v := &models.Verification{
		ID:          uuid.New().String(),
		Network:     string(res.Network),
		Checksum:    res.Checksum,
		Valid:       res.Valid,
		Result:      res.String(),
		Mode:        s.validator.Mode().String(),
		MaskedPAN:   cardnum.MaskPAN(pan),
		Fingerprint: cardnum.Fingerprint(pan, s.hashKey),
	}
	s.logger.Info("card verified",
		slog.String("id", v.ID),
		slog.String("result", v.Result),
		slog.String("fingerprint", v.Fingerprint),
	)
	return v
}
