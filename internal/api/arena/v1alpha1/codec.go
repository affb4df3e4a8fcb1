// Package arenav1alpha1 defines the arena wire messages and gRPC service
// descriptors. Messages travel as JSON using the "json" content-subtype.
package arenav1alpha1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the arena services speak
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals arena messages as JSON
type Codec struct{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes data into v. An empty payload leaves v at its zero value.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the content-subtype
func (Codec) Name() string {
	return CodecName
}

// CallOptions returns the call options every arena client call needs
func CallOptions(opts ...grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
