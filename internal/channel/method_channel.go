package channel

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Error codes produced by the channel itself
const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeEncodeError = "ENCODE_ERROR"
)

// MethodChannel carries method calls over a Messenger under a stable name
type MethodChannel struct {
	name      string
	codec     MethodCodec
	messenger *Messenger
}

// NewMethodChannel creates a channel. A nil codec selects JSONMethodCodec.
func NewMethodChannel(messenger *Messenger, name string, codec MethodCodec) *MethodChannel {
	if codec == nil {
		codec = JSONMethodCodec{}
	}
	return &MethodChannel{name: name, codec: codec, messenger: messenger}
}

// Name returns the channel name
func (c *MethodChannel) Name() string {
	return c.name
}

// SetMethodCallHandler installs h as the receiver of calls on this channel
func (c *MethodChannel) SetMethodCallHandler(h MethodCallHandler) {
	if h == nil {
		c.messenger.SetMessageHandler(c.name, nil)
		return
	}

	c.messenger.SetMessageHandler(c.name, func(ctx context.Context, message []byte) []byte {
		r := &reply{codec: c.codec, channel: c.name}

		call, err := c.codec.DecodeMethodCall(message)
		if err != nil {
			r.Error(CodeBadRequest, err.Error(), nil)
			return r.message
		}

		r.method = call.Method
		h(ctx, call, r)
		return r.message
	})
}

// InvokeMethod sends a call and decodes the reply. The returned error is an
// *Error for error replies or ErrNotImplemented.
func (c *MethodChannel) InvokeMethod(ctx context.Context, method string, args []byte) ([]byte, error) {
	message, err := c.codec.EncodeMethodCall(&MethodCall{Method: method, Arguments: args})
	if err != nil {
		return nil, errors.Wrapf(err, "encode call %s", method)
	}
	return c.codec.DecodeEnvelope(c.messenger.Send(ctx, c.name, message))
}

// reply records the first answer given to a call; later answers are dropped
type reply struct {
	codec   MethodCodec
	channel string
	method  string
	message []byte
	done    bool
}

func (r *reply) claim() bool {
	if r.done {
		log.Warn().Str("channel", r.channel).Str("method", r.method).Msg("method call answered more than once")
		return false
	}
	r.done = true
	return true
}

func (r *reply) Success(value any) {
	if !r.claim() {
		return
	}
	message, err := r.codec.EncodeSuccessEnvelope(value)
	if err != nil {
		r.message, _ = r.codec.EncodeErrorEnvelope(CodeEncodeError, err.Error(), nil)
		return
	}
	r.message = message
}

func (r *reply) Error(code, message string, details any) {
	if !r.claim() {
		return
	}
	r.message, _ = r.codec.EncodeErrorEnvelope(code, message, details)
}

func (r *reply) NotImplemented() {
	if !r.claim() {
		return
	}
	r.message = nil
}
