package models

type VerifyRequest struct {
	Number string `json:"number"`
}

// Verification is the outcome of one verify call as returned to clients.
type Verification struct {
	ID       string `json:"id"`
	Network  string `json:"network,omitempty"`
	Checksum int    `json:"checksum"`
	Valid    bool   `json:"valid"`
	// Result is the network name or "Invalid credit card".
	Result    string `json:"result"`
	Mode      string `json:"mode"`
	MaskedPAN string `json:"masked_pan"`
	// Fingerprint is set only when the service has a PAN hash key.
	Fingerprint string `json:"fingerprint,omitempty"`
	// MTI is set for verifications of ISO 8583 messages.
	MTI string `json:"mti,omitempty"`
}
