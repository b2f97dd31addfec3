package collective

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/near/borsh-go"
)

// maxFrameLength caps a single collective payload (1GB).
const maxFrameLength = 1 << 30

type frameOp uint8

const (
	opJoin frameOp = iota + 1
	opBroadcast
	opAck
	opArrive
	opRelease
)

// frame is the wire envelope of the TCP group. Frames travel as a 4-byte
// big-endian length prefix followed by the borsh-encoded envelope.
type frame struct {
	Op      frameOp
	Seq     uint64
	Rank    int32
	Payload []byte
}

func writeFrame(w io.Writer, f frame) error {
	bytes, err := borsh.Serialize(f)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if len(bytes) > maxFrameLength {
		return fmt.Errorf("frame of %d bytes exceeds limit", len(bytes))
	}
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(bytes)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

func readFrame(r io.Reader) (frame, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return frame{}, err
	}
	length := binary.BigEndian.Uint32(prefix[:])
	if length > maxFrameLength {
		return frame{}, fmt.Errorf("frame of %d bytes exceeds limit", length)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return frame{}, err
	}
	var f frame
	if err := borsh.Deserialize(&f, body); err != nil {
		return frame{}, fmt.Errorf("decoding frame: %w", err)
	}
	return f, nil
}

// expect validates the envelope of a frame against the running sequence.
// A mismatch means the group lost lockstep, which is unrecoverable.
func (f frame) expect(op frameOp, seq uint64) error {
	if f.Op != op || f.Seq != seq {
		return fmt.Errorf("collective out of sync: got op=%d seq=%d, want op=%d seq=%d",
			f.Op, f.Seq, op, seq)
	}
	return nil
}
