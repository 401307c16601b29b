package recdb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type encodingMethod int

const (
	MsgPack encodingMethod = iota
	JSON

	defaultValueEncoding = MsgPack
)

func (enc encodingMethod) EncodeValue(buf []byte, obj any) []byte {
	switch enc {
	case MsgPack:
		bb := bytesBuilder{buf}
		e := msgpack.GetEncoder()
		e.Reset(&bb)
		e.SetSortMapKeys(true)
		err := e.Encode(obj)
		msgpack.PutEncoder(e)
		if err != nil {
			panic(fmt.Errorf("failed to encode %T using MsgPack: %w", obj, err))
		}
		return bb.Buf
	case JSON:
		raw, err := json.Marshal(obj)
		if err != nil {
			panic(fmt.Errorf("failed to encode %T to JSON: %w", obj, err))
		}
		return appendRaw(buf, raw)
	default:
		panic("unsupported encoding")
	}
}

func (enc encodingMethod) DecodeValue(buf []byte, objPtr any) error {
	switch enc {
	case MsgPack:
		var r bytes.Reader
		r.Reset(buf)
		dec := msgpack.GetDecoder()
		dec.Reset(&r)
		err := dec.Decode(objPtr)
		msgpack.PutDecoder(dec)
		if err != nil {
			return dataErrf(buf, 0, err, "failed to decode msgpack into %T", objPtr)
		}
		return nil
	case JSON:
		err := json.Unmarshal(buf, objPtr)
		if err != nil {
			return dataErrf(buf, 0, err, "failed to decode JSON into %T", objPtr)
		}
		return nil
	default:
		panic("unsupported encoding")
	}
}
