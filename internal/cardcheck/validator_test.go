package cardcheck

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/alovak/cardcheck/internal/cardnum"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func quietValidator(opts ...Option) *Validator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func TestVerify_DemoNumber(t *testing.T) {
	v := quietValidator()

	res, err := v.Verify("371449635398431")
	require.NoError(t, err)
	require.Equal(t, 4, res.Checksum)
	require.False(t, res.Valid)
	require.Equal(t, InvalidCard, res.String())

	require.Equal(t, res, v.VerifyNumber(371449635398431))
}

func TestVerify_LuhnMode(t *testing.T) {
	v := quietValidator(WithMode(ModeLuhn))

	cases := []struct {
		in   string
		want string
	}{
		{"371449635398431", "American Express"},
		{"378282246310005", "American Express"},
		{"5555555555554444", "MasterCard"},
		{"4111111111111111", "Visa"},
		{"4111111111111112", InvalidCard},
		{"6011111111111117", InvalidCard},
	}
	for _, c := range cases {
		res, err := v.Verify(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, res.String(), c.in)
	}
}

func TestVerify_LuhnModeMatchesLuhnCheck(t *testing.T) {
	v := quietValidator(WithMode(ModeLuhn))

	for _, in := range []string{"371449635398431", "4111111111111111", "4111111111111112", "0", "0000", "18", "59"} {
		d, err := cardnum.Parse(in)
		require.NoError(t, err)

		res := v.Check(d)
		require.Equal(t, cardnum.ValidLuhn(d), res.Valid, in)
		require.Equal(t, cardnum.LuhnSum(d), res.Checksum, in)
	}

	res := v.Check(nil)
	require.False(t, res.Valid)
	require.Equal(t, InvalidCard, res.String())
}

func TestVerify_Networks(t *testing.T) {
	v := quietValidator()

	cases := []struct {
		in    string
		valid bool
		want  string
	}{
		{"349", true, "American Express"},
		{"373", true, "American Express"},
		{"354", true, InvalidCard},
		{"514", true, "MasterCard"},
		{"552", true, "MasterCard"},
		{"509", true, InvalidCard},
		{"566", true, InvalidCard},
		{"415", true, "Visa"},
		{"491", true, "Visa"},
		{"0000", true, InvalidCard},
		{"0", true, InvalidCard},
		{"4", false, InvalidCard},
		{"3", false, InvalidCard},
		{"5", false, InvalidCard},
		{"41", false, InvalidCard},
	}
	for _, c := range cases {
		res, err := v.Verify(c.in)
		require.NoError(t, err)
		require.Equal(t, c.valid, res.Valid, c.in)
		require.Equal(t, c.want, res.String(), c.in)
	}
}

func TestVerify_SingleDigit(t *testing.T) {
	res, err := quietValidator().Verify("4")
	require.NoError(t, err)
	require.Equal(t, 8, res.Checksum)
	require.Equal(t, Network(""), res.Network)
}

func TestVerify_Malformed(t *testing.T) {
	v := quietValidator()

	_, err := v.Verify("")
	require.True(t, errors.Is(err, cardnum.ErrEmpty))

	_, err = v.Verify("4111x")
	require.True(t, errors.Is(err, cardnum.ErrNonDigit))

	require.Equal(t, InvalidCard, Verify(""))
	require.Equal(t, InvalidCard, Verify("abc"))
}

func TestVerify_PackageLevel(t *testing.T) {
	require.Equal(t, InvalidCard, Verify("371449635398431"))
	require.Equal(t, "Visa", Verify("415"))
	require.Equal(t, "MasterCard", Verify("514"))
}

func TestVerify_LogsChecksum(t *testing.T) {
	var buf bytes.Buffer
	v := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	_, err := v.Verify("371449635398431")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "checksum=4")
	require.Contains(t, out, "mode=legacy")
	require.Contains(t, out, "371449*****8431")
	require.False(t, strings.Contains(out, "371449635398431"), "full PAN must not be logged")
}

func TestVerify_Deterministic(t *testing.T) {
	v := quietValidator()
	first, err := v.Verify("5105105105105100")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := v.Verify("5105105105105100")
			require.NoError(t, err)
			require.Equal(t, first, res)
		}()
	}
	wg.Wait()
}

func TestClassify(t *testing.T) {
	require.Equal(t, Network(""), Classify(nil))
	require.Equal(t, Visa, Classify(cardnum.Digits{4}))
	require.Equal(t, Network(""), Classify(cardnum.Digits{3}))
	require.Equal(t, AmericanExpress, Classify(cardnum.Digits{3, 7, 0}))
	require.Equal(t, Network(""), Classify(cardnum.Digits{3, 5}))
	require.Equal(t, MasterCard, Classify(cardnum.Digits{5, 1}))
	require.Equal(t, MasterCard, Classify(cardnum.Digits{5, 5}))
	require.Equal(t, Network(""), Classify(cardnum.Digits{5, 0}))
	require.Equal(t, Network(""), Classify(cardnum.Digits{5, 6}))
	require.Equal(t, Network(""), Classify(cardnum.Digits{6, 0}))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeLegacy, m)

	m, err = ParseMode(" LUHN ")
	require.NoError(t, err)
	require.Equal(t, ModeLuhn, m)
	require.Equal(t, "luhn", m.String())

	_, err = ParseMode("mod11")
	require.Error(t, err)
}
