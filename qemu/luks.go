package qemu

import (
	"strconv"
	"strings"
)

// EncryptionOptions describes the LUKS encryption parameters of a disk.
// The zero value of a string field means the field is absent.
//
// The fields form a strict dependency chain: CipherSize, CipherMode and
// CipherHash are unreachable without CipherName, and IvgenHash is
// unreachable without IvgenName.
type EncryptionOptions struct {
	CipherName string
	CipherSize uint
	CipherMode string
	CipherHash string
	IvgenName  string
	IvgenHash  string
}

// BuildLuksOpts appends the key-secret and encryption options for alias to
// b. Every fragment ends with a trailing comma since callers append
// further arguments after it, so the result is either
//
//	key-secret=<alias>,
//
// or something like
//
//	key-secret=<alias>,cipher-alg=twofish-256,cipher-mode=cbc,
//	hash-alg=sha256,ivgen-alg=plain64,ivgen-hash-alg=sha256,
func BuildLuksOpts(b *strings.Builder, enc *EncryptionOptions, alias string) {
	b.WriteString("key-secret=")
	b.WriteString(alias)
	b.WriteByte(',')

	if enc.CipherName == "" {
		return
	}

	b.WriteString("cipher-alg=")
	appendEscaped(b, enc.CipherName)
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(uint64(enc.CipherSize), 10))
	b.WriteByte(',')

	if enc.CipherMode != "" {
		b.WriteString("cipher-mode=")
		appendEscaped(b, enc.CipherMode)
		b.WriteByte(',')
	}

	if enc.CipherHash != "" {
		b.WriteString("hash-alg=")
		appendEscaped(b, enc.CipherHash)
		b.WriteByte(',')
	}

	if enc.IvgenName == "" {
		return
	}

	b.WriteString("ivgen-alg=")
	appendEscaped(b, enc.IvgenName)
	b.WriteByte(',')

	if enc.IvgenHash != "" {
		b.WriteString("ivgen-hash-alg=")
		appendEscaped(b, enc.IvgenHash)
		b.WriteByte(',')
	}
}
