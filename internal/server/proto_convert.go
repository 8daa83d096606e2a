package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type wireFormat int

const (
	formatJSON wireFormat = iota
	formatProto
)

func parseWireFormat(raw string) wireFormat {
	if raw == "proto" || raw == "protobuf" {
		return formatProto
	}
	return formatJSON
}

func (f wireFormat) String() string {
	if f == formatProto {
		return "proto"
	}
	return "json"
}

// toStruct converts any JSON-encodable value into a protobuf Struct by way of
// its JSON form, so the json tags on DTOs and events define the field names
// for both formats.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("frame is not an object: %w", err)
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return st, nil
}

// encodeProtoFrame marshals an outbound message as a binary Struct.
func encodeProtoFrame(msg outboundMessage) ([]byte, error) {
	st, err := toStruct(msg)
	if err != nil {
		return nil, err
	}
	data, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	return data, nil
}

// decodeProtoFrame reads a binary Struct frame of the form
// {type: string, payload: object}.
func decodeProtoFrame(data []byte) (inboundMessage, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return inboundMessage{}, fmt.Errorf("protobuf unmarshal error: %w", err)
	}
	fields := st.AsMap()
	typ, _ := fields["type"].(string)
	if typ == "" {
		return inboundMessage{}, fmt.Errorf("frame missing type")
	}
	msg := inboundMessage{Type: typ}
	if payload, ok := fields["payload"]; ok && payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return inboundMessage{}, fmt.Errorf("re-encode payload: %w", err)
		}
		msg.Payload = raw
	}
	return msg, nil
}

// writeFrame sends msg in the connection's negotiated format.
func writeFrame(conn *websocket.Conn, format wireFormat, msg outboundMessage) error {
	if format == formatProto {
		data, err := encodeProtoFrame(msg)
		if err != nil {
			return err
		}
		return conn.WriteMessage(websocket.BinaryMessage, data)
	}
	return conn.WriteJSON(msg)
}

// readFrame decodes either a text JSON frame or a binary Struct frame.
func readFrame(msgType int, data []byte) (inboundMessage, error) {
	switch msgType {
	case websocket.BinaryMessage:
		return decodeProtoFrame(data)
	case websocket.TextMessage:
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return inboundMessage{}, fmt.Errorf("invalid JSON message: %w", err)
		}
		return msg, nil
	}
	return inboundMessage{}, fmt.Errorf("unsupported WebSocket message type %d", msgType)
}
