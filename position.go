package gocursor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// ErrPositionOutOfRange is returned when a position token points past the
// end of the elements it is resumed over.
var ErrPositionOutOfRange = errors.New("position out of range")

// Token returns an opaque URL-safe token for the current index, to be passed
// to Resume later. The rewound state encodes to an empty string, and so does
// any index below -1.
//
// The token stores how many elements were consumed (index + 1), not the
// elements themselves. Resume it over the same snapshot.
func (c *Cursor[T]) Token() string {
	return encodePosition(c.GetIndex())
}

func encodePosition(index int) string {
	offset := index + 1
	if offset <= 0 {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodePosition parses a token produced by Cursor.Token into an index.
// An empty token decodes to -1.
func DecodePosition(token string) (int, error) {
	if len(token) == 0 {
		return -1, nil
	}

	offsetBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("failed to decode base64 encoded position: %w", err)
	}

	offset, err := strconv.Atoi(string(offsetBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to decode position offset value: %w", err)
	}

	if offset < 0 {
		return 0, fmt.Errorf("negative position offset %d", offset)
	}

	// One position, one token.
	if strconv.Itoa(offset) != string(offsetBytes) {
		return 0, fmt.Errorf("non-canonical position offset '%s'", offsetBytes)
	}

	return offset - 1, nil
}

// Resume builds a cursor over elements and moves it to the index recorded in
// token.
//
// Usage:
//
//	c, err := gocursor.Resume(items, req.PageToken)
//	if err != nil {
//	    return err
//	}
//	for c.HasNext() {
//	    ...
//	}
func Resume[T any](elements []T, token string) (*Cursor[T], error) {
	index, err := DecodePosition(token)
	if err != nil {
		return nil, fmt.Errorf("cannot resume cursor: %w", err)
	}

	if index > len(elements) {
		return nil, fmt.Errorf("cannot resume cursor at %d of %d: %w", index, len(elements), ErrPositionOutOfRange)
	}

	c := New(elements)
	for c.GetIndex() < index {
		c.Next()
	}

	return c, nil
}
