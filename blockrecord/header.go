// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/util"
)

// byte sizes for fixed fields
const (
	PreviousBlockSize = merkle.DigestLength // SHA3-256 digest of the previous block
	NonceSize         = 4                   // little endian 32 bit nonce
)

// PackedHeader - packed records are just a byte slice
type PackedHeader []byte

// Header - the unpacked header structure
type Header struct {
	MajorVersion  uint8         `json:"majorVersion"`
	MinorVersion  uint8         `json:"minorVersion"`
	Timestamp     uint64        `json:"timestamp"`
	PreviousBlock merkle.Digest `json:"previousBlock"`
	Nonce         NonceType     `json:"nonce"`
}

// Pack - turn a header into bytes
//
// Varint64(major) Varint64(minor) Varint64(timestamp) previous[32] nonce[4]
func (header *Header) Pack() PackedHeader {
	buffer := util.PackBuffer(util.ToVarint64(uint64(header.MajorVersion)))
	buffer = buffer.AppendUint64(uint64(header.MinorVersion))
	buffer = buffer.AppendUint64(header.Timestamp)

	// already in little endian order so can just copy it
	buffer = buffer.AppendFixed(header.PreviousBlock[:])

	nonce := make([]byte, NonceSize)
	binary.LittleEndian.PutUint32(nonce, uint32(header.Nonce))
	return PackedHeader(buffer.AppendFixed(nonce))
}

// Unpack - turn a byte slice into a header
func (record PackedHeader) Unpack() (*Header, int, error) {
	u := util.NewUnpackBuffer(record)
	header, err := unpackHeader(u)
	if nil != err {
		return nil, 0, err
	}
	return header, u.Consumed(), nil
}

func unpackHeader(u *util.UnpackBuffer) (*Header, error) {
	major, err := u.Uint8("major version")
	if nil != err {
		return nil, err
	}
	minor, err := u.Uint8("minor version")
	if nil != err {
		return nil, err
	}
	timestamp, err := u.Uint64("timestamp")
	if nil != err {
		return nil, err
	}
	previous, err := u.Fixed("previous block", PreviousBlockSize)
	if nil != err {
		return nil, err
	}
	nonce, err := u.Fixed("nonce", NonceSize)
	if nil != err {
		return nil, err
	}

	header := &Header{
		MajorVersion: major,
		MinorVersion: minor,
		Timestamp:    timestamp,
		Nonce:        NonceType(binary.LittleEndian.Uint32(nonce)),
	}
	copy(header.PreviousBlock[:], previous)
	return header, nil
}
