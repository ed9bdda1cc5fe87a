// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/stimmie/models"
)

// Writer stores one completed response.
type Writer interface {
	WriteResponse(ctx context.Context, rec models.ResponseRecord) error
}

// Reader returns every stored response.
type Reader interface {
	ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error)
}

// ReadWriter is a full persistence backend.
type ReadWriter interface {
	Reader
	Writer
}

// Kind classifies a gateway failure.
type Kind int

const (
	KindTransport Kind = iota
	KindTimeout
	KindStatus
	KindDecode
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	}
	return "unknown"
}

// Failure is returned by every gateway operation that does not succeed.
type Failure struct {
	Op     string
	Kind   Kind
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Kind == KindStatus {
		return fmt.Sprintf("%s: unexpected status %d: %v", f.Op, f.Status, f.Err)
	}
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// IsTimeout reports whether err is a gateway timeout.
func IsTimeout(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindTimeout
}
