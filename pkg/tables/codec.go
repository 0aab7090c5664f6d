package tables

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrBadPayload is returned when a serialized table has the wrong shape.
var ErrBadPayload = errors.New("tables: malformed table payload")

// Payloads are a little-endian uint64 element count followed by the
// elements, little-endian.

func appendHeader(n int, width int) []byte {
	b := make([]byte, 8, 8+n*width)
	binary.LittleEndian.PutUint64(b, uint64(n))
	return b
}

func readHeader(b []byte, want, width int) ([]byte, error) {
	if len(b) < 8 {
		return nil, fmt.Errorf("payload of %d bytes has no header: %w", len(b), ErrBadPayload)
	}
	n := binary.LittleEndian.Uint64(b)
	if n != uint64(want) {
		return nil, fmt.Errorf("payload holds %d elements, want %d: %w", n, want, ErrBadPayload)
	}
	body := b[8:]
	if len(body) != want*width {
		return nil, fmt.Errorf("payload body is %d bytes, want %d: %w", len(body), want*width, ErrBadPayload)
	}
	return body, nil
}

func encodeUint32s(data []uint32) []byte {
	b := appendHeader(len(data), 4)
	for _, v := range data {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func decodeUint32s(b []byte, want int) ([]uint32, error) {
	body, err := readHeader(b, want, 4)
	if err != nil {
		return nil, err
	}
	data := make([]uint32, want)
	for i := range data {
		data[i] = binary.LittleEndian.Uint32(body[4*i:])
	}
	return data, nil
}

func encodeInt16s(data []int16) []byte {
	b := appendHeader(len(data), 2)
	for _, v := range data {
		b = binary.LittleEndian.AppendUint16(b, uint16(v))
	}
	return b
}

func decodeInt16s(b []byte, want int) ([]int16, error) {
	body, err := readHeader(b, want, 2)
	if err != nil {
		return nil, err
	}
	data := make([]int16, want)
	for i := range data {
		data[i] = int16(binary.LittleEndian.Uint16(body[2*i:]))
	}
	return data, nil
}

func encodeBytes(data []byte) []byte {
	return append(appendHeader(len(data), 1), data...)
}

func decodeBytes(b []byte, want int) ([]byte, error) {
	body, err := readHeader(b, want, 1)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), body...), nil
}
