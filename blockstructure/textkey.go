// SPDX-License-Identifier: MIT

package blockstructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Index-map keys and values are persisted as text: a two-element JSON array
// holding the block name and the label, e.g. ["up",0] or ["eg","xy"].
// Absent targets are [null,null]. Decoding goes through a literal-only JSON
// decoder, so no archived text can run code.

func encodeKey(k Key) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(strconv.Quote(k.Block))
	buf.WriteByte(',')
	if n, ok := k.Index.Int(); ok {
		buf.WriteString(strconv.Itoa(n))
	} else {
		buf.WriteString(strconv.Quote(k.Index.name))
	}
	buf.WriteByte(']')

	return buf.String()
}

func encodeTarget(t Target) string {
	k, ok := t.Key()
	if !ok {
		return "[null,null]"
	}

	return encodeKey(k)
}

// parsePair decodes the array text; absent reports [null,null].
func parsePair(text string) (k Key, absent bool, err error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var raw []any
	if err = dec.Decode(&raw); err != nil {
		return Key{}, false, fmt.Errorf("pair %q: %v: %w", text, err, ErrDecode)
	}
	if dec.More() || len(raw) != 2 {
		return Key{}, false, fmt.Errorf("pair %q: want [block, index]: %w", text, ErrDecode)
	}
	if raw[0] == nil && raw[1] == nil {
		return Key{}, true, nil
	}
	block, ok := raw[0].(string)
	if !ok {
		return Key{}, false, fmt.Errorf("pair %q: block must be a string: %w", text, ErrDecode)
	}
	var label Label
	switch v := raw[1].(type) {
	case string:
		label = NameLabel(v)
	case json.Number:
		n, perr := strconv.Atoi(v.String())
		if perr != nil {
			return Key{}, false, fmt.Errorf("pair %q: index %s: %w", text, v, ErrInvalidLabel)
		}
		label = IntLabel(n)
	default:
		return Key{}, false, fmt.Errorf("pair %q: index %v: %w", text, raw[1], ErrInvalidLabel)
	}

	return K(block, label), false, nil
}

func decodeKey(text string) (Key, error) {
	k, absent, err := parsePair(text)
	if err != nil {
		return Key{}, err
	}
	if absent {
		return Key{}, fmt.Errorf("key %q cannot be absent: %w", text, ErrDecode)
	}

	return k, nil
}

func decodeTarget(text string) (Target, error) {
	k, absent, err := parsePair(text)
	if err != nil {
		return Absent, err
	}
	if absent {
		return Absent, nil
	}

	return To(k), nil
}
