// Package rpc provides the wire types, codec, and error taxonomy shared by
// the gateway's upstream service clients.
//
// The upstream services are defined by dynamically loaded protos with
// keepCase field naming; the gateway talks to them through a JSON codec and
// declares each wire shape as a tagged struct. Field-name translation
// between the wire and the HTTP API happens entirely in this package's
// struct tags.
package rpc

import (
	"fmt"

	"github.com/bytedance/sonic"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the gateway uses for upstream calls.
const CodecName = "json"

// jsonCodec marshals call payloads with sonic.
type jsonCodec struct{}

// Marshal serializes the message to JSON.
func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes JSON data into the message.
func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

// Name returns the codec name.
func (jsonCodec) Name() string {
	return CodecName
}

// init registers the JSON codec with gRPC.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}
