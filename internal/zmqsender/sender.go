// Package zmqsender frames typed events and pushes them over a ZMQ socket.
//
// Wire format, one frame per message:
//
//	[4 bytes LE int32 message type][4 bytes LE int32 options][UTF-8 JSON payload]
//
// The options field is reserved and currently always zero. The payload has
// no length prefix; it runs to the end of the frame.
package zmqsender

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"github.com/pebbe/zmq4"
)

const frameHeaderLen = 8

// ErrFrameTooShort marks a frame smaller than its fixed header.
var ErrFrameTooShort = errors.New("frame shorter than header")

// EncodeFrame builds a single wire frame from an already serialized payload.
func EncodeFrame(msgType model.MessageType, opts int32, payload []byte) []byte {
	frame := make([]byte, frameHeaderLen+len(payload))
	binary.LittleEndian.PutUint32(frame[0:4], uint32(msgType))
	binary.LittleEndian.PutUint32(frame[4:8], uint32(opts))
	copy(frame[frameHeaderLen:], payload)
	return frame
}

// DecodeFrame splits a wire frame back into its type, options and payload.
func DecodeFrame(frame []byte) (model.MessageType, int32, []byte, error) {
	if len(frame) < frameHeaderLen {
		return 0, 0, nil, ErrFrameTooShort
	}
	msgType := model.MessageType(int32(binary.LittleEndian.Uint32(frame[0:4])))
	opts := int32(binary.LittleEndian.Uint32(frame[4:8]))
	return msgType, opts, frame[frameHeaderLen:], nil
}

// Sender owns the PUSH socket. Sends block when the socket's high-water
// mark is reached; a slow subscriber therefore backpressures the caller.
type Sender struct {
	socket *zmq4.Socket
	bind   string
}

// NewSender creates a PUSH socket bound to the given address. A bind
// failure is fatal to the caller: messaging was requested but could not
// be established.
func NewSender(bind string) (*Sender, error) {
	socket, err := zmq4.NewSocket(zmq4.PUSH)
	if err != nil {
		return nil, fmt.Errorf("create push socket: %w", err)
	}
	if err := socket.Bind(bind); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("bind push socket to %s: %w", bind, err)
	}
	return &Sender{socket: socket, bind: bind}, nil
}

// Send serializes the payload and pushes one frame. The options field is
// always zero until a versioned flag is defined.
func (s *Sender) Send(msgType model.MessageType, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	if _, err := s.socket.SendBytes(EncodeFrame(msgType, 0, body), 0); err != nil {
		return fmt.Errorf("send %s message: %w", msgType, err)
	}
	return nil
}

// Close unbinds and closes the socket, failing any pending or future send.
func (s *Sender) Close() error {
	if err := s.socket.Unbind(s.bind); err != nil {
		_ = s.socket.Close()
		return fmt.Errorf("unbind push socket: %w", err)
	}
	if err := s.socket.Close(); err != nil {
		return fmt.Errorf("close push socket: %w", err)
	}
	return nil
}
