package requests

// ParseAddressRequest is the body of a single-address parse call.
type ParseAddressRequest struct {
	Address string       `json:"address" binding:"required"`
	Options ParseOptions `json:"options,omitempty"`
}

// ParseOptions tunes a parse call.
type ParseOptions struct {
	UseCache      bool    `json:"use_cache,omitempty"`      // look up / store the result in the cache
	MinConfidence float64 `json:"min_confidence,omitempty"` // below this the result is flagged low-confidence
}

// BatchParseRequest is the body of an asynchronous batch job submission.
type BatchParseRequest struct {
	Addresses []string     `json:"addresses" binding:"required,min=1,max=20000"`
	Options   ParseOptions `json:"options,omitempty"`
}
