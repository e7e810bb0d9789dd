package cardnum

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPANHMAC computes HMAC-SHA256 over a PAN using a secret key (pepper).
// Do not log or persist the input PAN here; callers must sanitize logs separately.
func HashPANHMAC(pan string, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(pan))
	return h.Sum(nil)
}

// Fingerprint is a short hex prefix of HashPANHMAC, safe to put in logs and
// responses to correlate requests for the same card.
func Fingerprint(pan string, key []byte) string {
	if len(key) == 0 {
		return ""
	}
	return hex.EncodeToString(HashPANHMAC(pan, key))[:16]
}
