// Package codec registers a JSON grpc codec so RowStream messages can be plain Go structs
// instead of generated protobuf types.
package codec

import (
	"fmt"
	"github.com/go-json-experiment/json"
	"google.golang.org/grpc/encoding"
)

// Name is the codec's content-subtype: requests are sent as application/grpc+json.
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements encoding.Codec with json v2.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s codec: failed to marshal %T: %w", Name, v, err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s codec: failed to unmarshal into %T: %w", Name, v, err)
	}
	return nil
}

func (Codec) Name() string {
	return Name
}
