// Package commitment publishes a Merkle Sum Tree's root as a signed
// COSE_Sign1 statement, so a holder of the statement can later verify it
// against a freshly presented root without recomputing the tree itself.
//
// This is the proof-of-reserves use case spec.md §1 names as the tree's
// motivation, expressed as a COSE_Sign1 envelope over a deterministic
// (canonical) CBOR payload.
package commitment

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"

	"github.com/AntoineCyr/merkle-sum-proof/field"
	"github.com/AntoineCyr/merkle-sum-proof/mst"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/veraison/go-cose"
)

// headerLabelRootSum and headerLabelHeight are private COSE protected
// header labels carrying the claimed root value and tree height alongside
// the root hash payload, so a verifier can read them without first
// unwrapping the CBOR payload.
const (
	headerLabelRootSum int64 = -65000
	headerLabelHeight  int64 = -65001
)

// Statement is the CBOR payload signed inside the COSE_Sign1 envelope: a
// snapshot of a tree's root at the moment of publication.
type Statement struct {
	ID       uuid.UUID `cbor:"1,keyasint"`
	RootHash []byte    `cbor:"2,keyasint"`
	RootSum  int32     `cbor:"3,keyasint"`
	Height   int       `cbor:"4,keyasint"`
}

// ErrRootSumMismatch reports that a verified envelope's protected header
// disagrees with its signed payload.
type ErrRootSumMismatch struct {
	Header  int32
	Payload int32
}

func (e *ErrRootSumMismatch) Error() string {
	return fmt.Sprintf("commitment: header root sum %d disagrees with payload %d", e.Header, e.Payload)
}

func encMode() (cbor.EncMode, error) {
	opts := cbor.CanonicalEncOptions()
	return opts.EncMode()
}

func decMode() (cbor.DecMode, error) {
	opts := cbor.DecOptions{}
	return opts.DecMode()
}

// Publish signs the tree's current root into a COSE_Sign1 message using
// signer, identified by kid. The message carries a fresh statement ID so
// repeated publications of the same root are still individually
// addressable.
func Publish(tree *mst.Tree, signer crypto.Signer, alg cose.Algorithm, kid string) (*cose.Sign1Message, error) {
	root, err := tree.Root()
	if err != nil {
		return nil, err
	}

	statement := Statement{
		ID:       uuid.New(),
		RootHash: fieldBytes(root.Hash),
		RootSum:  root.Value,
		Height:   tree.Height(),
	}

	enc, err := encMode()
	if err != nil {
		return nil, err
	}
	payload, err := enc.Marshal(statement)
	if err != nil {
		return nil, err
	}

	msg := cose.NewSign1Message()
	msg.Payload = payload
	if msg.Headers.Protected == nil {
		msg.Headers.Protected = make(cose.ProtectedHeader)
	}
	msg.Headers.Protected[cose.HeaderLabelAlgorithm] = alg
	msg.Headers.Protected[cose.HeaderLabelKeyID] = []byte(kid)
	msg.Headers.Protected[headerLabelRootSum] = int64(root.Value)
	msg.Headers.Protected[headerLabelHeight] = int64(tree.Height())

	coseSigner, err := cose.NewSigner(alg, signer)
	if err != nil {
		return nil, err
	}
	if err := msg.Sign(rand.Reader, nil, coseSigner); err != nil {
		return nil, err
	}

	return msg, nil
}

// Verify checks msg's signature against pub and returns the signed
// statement, after confirming the protected-header root sum the signer
// published alongside the payload matches the payload itself.
func Verify(msg *cose.Sign1Message, pub *ecdsa.PublicKey, alg cose.Algorithm) (*Statement, error) {
	verifier, err := cose.NewVerifier(alg, pub)
	if err != nil {
		return nil, err
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return nil, err
	}

	dec, err := decMode()
	if err != nil {
		return nil, err
	}
	var statement Statement
	if err := dec.Unmarshal(msg.Payload, &statement); err != nil {
		return nil, err
	}

	headerSum, ok := msg.Headers.Protected[headerLabelRootSum].(int64)
	if ok && int32(headerSum) != statement.RootSum {
		return nil, &ErrRootSumMismatch{Header: int32(headerSum), Payload: statement.RootSum}
	}

	return &statement, nil
}

// VerifyAgainstRoot reports whether a verified statement matches a root
// node produced independently (e.g. recomputed from a freshly received
// tree), binding the published commitment to that root.
func VerifyAgainstRoot(statement *Statement, root mst.Node) bool {
	return string(statement.RootHash) == string(fieldBytes(root.Hash)) && statement.RootSum == root.Value
}

func fieldBytes(f field.F) []byte {
	limbs := f.Limbs()
	out := make([]byte, 0, 32)
	for i := len(limbs) - 1; i >= 0; i-- {
		for shift := 56; shift >= 0; shift -= 8 {
			out = append(out, byte(limbs[i]>>shift))
		}
	}
	return out
}
