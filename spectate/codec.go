package spectate

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec selects the snapshot wire format of one client
type Codec uint8

const (
	CodecJSON Codec = iota
	CodecMsgpack
)

// ParseCodec maps the codec query parameter, defaulting to JSON
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "", "json":
		return CodecJSON, nil
	case "msgpack":
		return CodecMsgpack, nil
	default:
		return CodecJSON, errors.Errorf("unknown codec %q", name)
	}
}

func (c Codec) String() string {
	if c == CodecMsgpack {
		return "msgpack"
	}
	return "json"
}

// MessageType is the websocket frame type carrying this codec
func (c Codec) MessageType() int {
	if c == CodecMsgpack {
		return websocket.BinaryMessage
	}
	return websocket.TextMessage
}

// Encode serializes a snapshot
func (c Codec) Encode(s *Snapshot) ([]byte, error) {
	if c == CodecMsgpack {
		data, err := msgpack.Marshal(s)
		return data, errors.Wrap(err, "msgpack encode")
	}
	data, err := json.Marshal(s)
	return data, errors.Wrap(err, "json encode")
}
