package session

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"aion/internal/support"
)

// MarshalCache encodes a session for on-disk or in-memory caching, so a
// repeated request for the same before/after pair can skip re-running the
// pipeline and the classifier.
func MarshalCache(s *AnalysisSession) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, support.NewInternalError(fmt.Sprintf("failed to marshal session cache: %v", err))
	}
	return data, nil
}

// UnmarshalCache decodes a session previously produced by MarshalCache.
func UnmarshalCache(data []byte) (*AnalysisSession, error) {
	var s AnalysisSession
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, support.NewInternalError(fmt.Sprintf("failed to unmarshal session cache: %v", err))
	}
	return &s, nil
}
