package mpwire

import (
	"bytes"
	"errors"
	"fmt"
	"hash"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-interp"
	"github.com/tarantool/go-interp/crypto"
	"github.com/tarantool/go-interp/hasher"
)

// signedEnvelopeMarker opens a two-element array: payload, then signature.
const signedEnvelopeMarker = 0x92

// ErrPayloadIsNil is returned by Seal for a nil payload.
var ErrPayloadIsNil = errors.New("payload is nil")

// SignedPayload is the observed payload field: its digest and its value.
type SignedPayload = interp.Observed[hash.Hash, []byte]

// SignedBodyState is the state of the payload and signature fields of Signed.
type SignedBodyState = interp.ParamBindState[
	interp.ObserveState[BinState],
	SignedPayload,
	interp.ContextActionState[BinState, []byte, SignedPayload],
]

// SignedState is the state of Signed parsers.
type SignedState = interp.ActionState[
	interp.PairState[NilState, SignedBodyState],
	interp.Both[interp.Unit, []byte],
]

// Signed returns a parser for a signed envelope [payload bin, signature bin].
// The digest of the payload field is accumulated while it is parsed, covering
// its marker and length prefix, and checked against the signature without
// buffering the envelope. The parser yields the payload and rejects when the
// signature does not match.
func Signed(verifier crypto.Verifier, maxPayload, maxSignature int) interp.Parser[SignedState, []byte] {
	open := interp.Action(interp.Byte(), func(marker *byte) (interp.Unit, bool) {
		return interp.Unit{}, *marker == signedEnvelopeMarker
	})

	var payload interp.Parser[interp.ObserveState[BinState], SignedPayload] = interp.ObserveBytes(
		hasher.Init(verifier.Hasher()),
		hasher.Fold,
		Bin(maxPayload),
	)

	signature := interp.ActionWith(Bin(maxSignature), func(sig *[]byte, field SignedPayload) ([]byte, bool) {
		value, ok := field.Result.Get()
		if !ok || field.Acc == nil {
			return nil, false
		}

		if err := verifier.VerifyDigest(field.Acc.Sum(nil), *sig); err != nil {
			return nil, false
		}

		return value, true
	})

	return interp.MoveAction(
		interp.Pair(open, interp.ParamBind(payload, signature)),
		func(both interp.Both[interp.Unit, []byte]) ([]byte, bool) {
			return both.Second.Get()
		},
	)
}

// Seal encodes payload into a signed envelope accepted by Signed.
func Seal(signer crypto.Signer, payload []byte) ([]byte, error) {
	if payload == nil {
		return nil, ErrPayloadIsNil
	}

	field, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	signature, err := signer.Sign(field)
	if err != nil {
		return nil, fmt.Errorf("failed to sign payload: %w", err)
	}

	var buf bytes.Buffer

	buf.WriteByte(signedEnvelopeMarker)
	buf.Write(field)

	if err := msgpack.NewEncoder(&buf).EncodeBytes(signature); err != nil {
		return nil, fmt.Errorf("failed to encode signature: %w", err)
	}

	return buf.Bytes(), nil
}
