package channel

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MethodCodec converts method calls and replies to and from messages
type MethodCodec interface {
	EncodeMethodCall(call *MethodCall) ([]byte, error)
	DecodeMethodCall(message []byte) (*MethodCall, error)
	EncodeSuccessEnvelope(value any) ([]byte, error)
	EncodeErrorEnvelope(code, message string, details any) ([]byte, error)
	// DecodeEnvelope returns the raw success value, an *Error, or
	// ErrNotImplemented for an empty message.
	DecodeEnvelope(envelope []byte) ([]byte, error)
}

// JSONMethodCodec encodes calls as {"method": ..., "args": ...}, successes as
// [value] and errors as [code, message, details].
type JSONMethodCodec struct{}

type wireCall struct {
	Method string              `json:"method"`
	Args   jsoniter.RawMessage `json:"args"`
}

// EncodeMethodCall encodes call
func (JSONMethodCodec) EncodeMethodCall(call *MethodCall) ([]byte, error) {
	w := wireCall{Method: call.Method, Args: call.Arguments}
	if len(w.Args) == 0 {
		w.Args = jsoniter.RawMessage("null")
	}
	return json.Marshal(&w)
}

// DecodeMethodCall decodes a message into a method call
func (JSONMethodCodec) DecodeMethodCall(message []byte) (*MethodCall, error) {
	var w wireCall
	if err := json.Unmarshal(message, &w); err != nil {
		return nil, errors.Wrap(err, "decode method call")
	}
	return &MethodCall{Method: w.Method, Arguments: w.Args}, nil
}

// EncodeSuccessEnvelope wraps value in a one-element array
func (JSONMethodCodec) EncodeSuccessEnvelope(value any) ([]byte, error) {
	return json.Marshal([]any{value})
}

// EncodeErrorEnvelope encodes an error triple
func (JSONMethodCodec) EncodeErrorEnvelope(code, message string, details any) ([]byte, error) {
	return json.Marshal([]any{code, message, details})
}

// DecodeEnvelope decodes a reply
func (JSONMethodCodec) DecodeEnvelope(envelope []byte) ([]byte, error) {
	if len(envelope) == 0 {
		return nil, ErrNotImplemented
	}

	var parts []jsoniter.RawMessage
	if err := json.Unmarshal(envelope, &parts); err != nil {
		return nil, errors.Wrap(err, "decode envelope")
	}

	switch len(parts) {
	case 1:
		if isNull(parts[0]) {
			return []byte("null"), nil
		}
		return parts[0], nil
	case 3:
		replyErr := &Error{}
		if err := decodePart(parts[0], &replyErr.Code); err != nil {
			return nil, errors.Wrap(err, "decode error code")
		}
		if err := decodePart(parts[1], &replyErr.Message); err != nil {
			return nil, errors.Wrap(err, "decode error message")
		}
		if err := decodePart(parts[2], &replyErr.Details); err != nil {
			return nil, errors.Wrap(err, "decode error details")
		}
		return nil, replyErr
	default:
		return nil, errors.Errorf("invalid envelope with %d elements", len(parts))
	}
}

// isNull reports a JSON null element. jsoniter hands back null array
// elements as empty raw messages.
func isNull(raw jsoniter.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// decodePart leaves dst at its zero value for null elements
func decodePart(raw jsoniter.RawMessage, dst any) error {
	if isNull(raw) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
