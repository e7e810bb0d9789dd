package cardcheck

import "github.com/alovak/cardcheck/internal/cardnum"

// Network is a card scheme name. The zero value means no scheme matched.
type Network string

const (
	AmericanExpress Network = "American Express"
	MasterCard      Network = "MasterCard"
	Visa            Network = "Visa"
)

// Classify picks the network from the leading digits. It does not look at
// the checksum.
func Classify(d cardnum.Digits) Network {
	first, ok := d.At(0)
	if !ok {
		return ""
	}
	second, hasSecond := d.At(1)
	switch first {
	case 3:
		if hasSecond && (second == 4 || second == 7) {
			return AmericanExpress
		}
	case 5:
		if hasSecond && second > 0 && second < 6 {
			return MasterCard
		}
	case 4:
		return Visa
	}
	return ""
}
