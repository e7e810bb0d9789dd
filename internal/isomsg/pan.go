// Package isomsg reads card numbers out of ISO 8583:1987 ASCII messages.
package isomsg

import (
	"errors"
	"fmt"

	"github.com/alovak/cardcheck/internal/cardnum"
	"github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"
)

const fieldPAN = 2

// ErrNoPAN is returned by Unpack when field 2 is absent.
var ErrNoPAN = errors.New("message has no primary account number (DE2)")

// Unpack returns the MTI and PAN of raw.
func Unpack(raw []byte) (mti, pan string, err error) {
	msg := iso8583.NewMessage(specs.Spec87ASCII)
	if err := msg.Unpack(raw); err != nil {
		return "", "", fmt.Errorf("unpacking iso8583 message: %w", err)
	}
	mti, err = msg.GetMTI()
	if err != nil {
		return "", "", fmt.Errorf("reading mti: %w", err)
	}
	pan, err = msg.GetString(fieldPAN)
	if err != nil {
		return "", "", fmt.Errorf("reading pan: %w", err)
	}
	if pan == "" {
		return mti, "", ErrNoPAN
	}
	return mti, pan, nil
}

// AuthorizationRequest packs a 0100 message carrying pan in DE2.
func AuthorizationRequest(pan string) ([]byte, error) {
	pan = cardnum.NormalizePAN(pan)
	if pan == "" {
		return nil, cardnum.ErrEmpty
	}
	msg := iso8583.NewMessage(specs.Spec87ASCII)
	msg.MTI("0100")
	if err := msg.Field(fieldPAN, pan); err != nil {
		return nil, fmt.Errorf("setting pan: %w", err)
	}
	raw, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("packing iso8583 message: %w", err)
	}
	return raw, nil
}
