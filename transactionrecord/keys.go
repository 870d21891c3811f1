// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
)

// byte sizes of the opaque cryptographic values
const (
	PublicKeyLength = 32
	KeyImageLength  = 32
	SignatureLength = 64
)

// PublicKey - one-time output key
type PublicKey [PublicKeyLength]byte

// KeyImage - image of the key spent by an input
type KeyImage [KeyImageLength]byte

// Signature - one element of a ring signature
type Signature [SignatureLength]byte

func (k PublicKey) String() string { return hex.EncodeToString(k[:]) }
func (k KeyImage) String() string  { return hex.EncodeToString(k[:]) }
func (s Signature) String() string { return hex.EncodeToString(s[:]) }

// MarshalText - hex text
func (k PublicKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }

// UnmarshalText - hex text to public key
func (k *PublicKey) UnmarshalText(s []byte) error { return unmarshalHex(k[:], s) }

// MarshalText - hex text
func (k KeyImage) MarshalText() ([]byte, error) { return marshalHex(k[:]) }

// UnmarshalText - hex text to key image
func (k *KeyImage) UnmarshalText(s []byte) error { return unmarshalHex(k[:], s) }

// MarshalText - hex text
func (s Signature) MarshalText() ([]byte, error) { return marshalHex(s[:]) }

// UnmarshalText - hex text to signature
func (s *Signature) UnmarshalText(b []byte) error { return unmarshalHex(s[:], b) }

func marshalHex(data []byte) ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(buffer, data)
	return buffer, nil
}

func unmarshalHex(data []byte, s []byte) error {
	if len(s) != hex.EncodedLen(len(data)) {
		return fmt.Errorf("%w: expected %d hex bytes, got %d", fault.ErrWrongDigestLength, hex.EncodedLen(len(data)), len(s))
	}
	_, err := hex.Decode(data, s)
	return err
}
