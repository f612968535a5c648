package zerohex

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestMsgpackAdapter(t *testing.T) {
	src := seq(20)
	var buf bytes.Buffer
	if err := EncodeMsgpack(msgpack.NewEncoder(&buf), src); err != nil {
		t.Fatal(err)
	}

	// the wire value is a plain msgpack string
	var s string
	if err := msgpack.Unmarshal(buf.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	if s != "0x000102030405060708090a0b0c0d0e0f10111213" {
		t.Fatalf("wire string %q", s)
	}

	dst := make([]byte, 20)
	if err := DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(buf.Bytes())), dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, src) {
		t.Fatalf("got %x", dst)
	}
}

func TestMsgpackAdapterErrors(t *testing.T) {
	bad, _ := msgpack.Marshal("0x1234")
	err := DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(bad)), make([]byte, 20))
	if !errors.Is(err, ErrInvalidLength) || !strings.HasPrefix(err.Error(), "msgpack: ") {
		t.Fatalf("err=%v", err)
	}

	num, _ := msgpack.Marshal(42)
	err = DecodeMsgpack(msgpack.NewDecoder(bytes.NewReader(num)), make([]byte, 20))
	if err == nil || errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected a msgpack type error, got %v", err)
	}
}

func TestCBORAdapter(t *testing.T) {
	src := []byte{0xca, 0xfe}
	b, err := MarshalCBOR(src)
	if err != nil {
		t.Fatal(err)
	}
	// major type 3 (text string), length 6
	if b[0] != 0x66 || string(b[1:]) != "0xcafe" {
		t.Fatalf("encoding %x", b)
	}

	dst := make([]byte, 2)
	if err := UnmarshalCBOR(dst, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, src) {
		t.Fatalf("got %x", dst)
	}
}

func TestCBORAdapterErrors(t *testing.T) {
	bad, _ := cbor.Marshal("0xcafg")
	err := UnmarshalCBOR(make([]byte, 2), bad)
	if !errors.Is(err, ErrInvalidHexDigit) || !strings.HasPrefix(err.Error(), "cbor: ") {
		t.Fatalf("err=%v", err)
	}

	num, _ := cbor.Marshal(7)
	var ute *cbor.UnmarshalTypeError
	if err := UnmarshalCBOR(make([]byte, 2), num); !errors.As(err, &ute) {
		t.Fatalf("expected *cbor.UnmarshalTypeError, got %v", err)
	}
}

func TestProtoAdapter(t *testing.T) {
	v := ToProto([]byte{0x01, 0x02})
	if v.GetValue() != "0x0102" {
		t.Fatalf("value %q", v.GetValue())
	}
	dst := make([]byte, 2)
	if err := FromProto(dst, wrapperspb.String("0X0A0B")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, []byte{0x0a, 0x0b}) {
		t.Fatalf("got %x", dst)
	}
	if err := FromProto(dst, nil); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("nil wrapper: err=%v", err)
	}
	if err := FromProto(make([]byte, 0), nil); err != nil {
		t.Fatalf("nil wrapper for N=0: %v", err)
	}
}
