// Package model defines domain models for the EOS event stream.
package model

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const symbolMaxCodeLen = 7

// ErrAssetRowTooShort marks a balance row too small to hold an asset.
var ErrAssetRowTooShort = errors.New("balance row shorter than asset encoding")

// ErrInvalidSymbol marks a symbol whose code bytes are not a valid token code.
var ErrInvalidSymbol = errors.New("invalid asset symbol")

// Symbol is a token symbol: decimal precision plus an uppercase code of up
// to seven letters.
type Symbol struct {
	Precision uint8
	Code      string
}

// Valid reports whether the symbol code is non-empty, uppercase A-Z only.
func (s Symbol) Valid() bool {
	if s.Code == "" || len(s.Code) > symbolMaxCodeLen {
		return false
	}
	for i := 0; i < len(s.Code); i++ {
		if s.Code[i] < 'A' || s.Code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Asset is a token amount in the smallest unit together with its symbol.
type Asset struct {
	Amount int64
	Symbol Symbol
}

// DecodeAsset unpacks the chain's raw 16-byte asset encoding: an int64
// little-endian amount followed by a uint64 little-endian symbol, whose low
// byte is the precision and remaining bytes the zero-padded code.
func DecodeAsset(row []byte) (Asset, error) {
	if len(row) < 16 {
		return Asset{}, ErrAssetRowTooShort
	}
	amount := int64(binary.LittleEndian.Uint64(row[:8]))
	raw := binary.LittleEndian.Uint64(row[8:16])

	sym := Symbol{Precision: uint8(raw)}
	code := make([]byte, 0, symbolMaxCodeLen)
	for i := 1; i < 8; i++ {
		c := byte(raw >> (8 * i))
		if c == 0 {
			// the remaining bytes must be zero padding
			for j := i + 1; j < 8; j++ {
				if byte(raw>>(8*j)) != 0 {
					return Asset{}, ErrInvalidSymbol
				}
			}
			break
		}
		code = append(code, c)
	}
	sym.Code = string(code)
	if !sym.Valid() {
		return Asset{}, ErrInvalidSymbol
	}
	return Asset{Amount: amount, Symbol: sym}, nil
}

// ParseAsset parses the canonical string form, e.g. "1.0000 EOS".
func ParseAsset(s string) (Asset, error) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 2)
	if len(parts) != 2 {
		return Asset{}, fmt.Errorf("asset %q: missing symbol code", s)
	}
	num, code := parts[0], parts[1]

	var precision int
	digits := num
	if dot := strings.IndexByte(num, '.'); dot >= 0 {
		precision = len(num) - dot - 1
		digits = num[:dot] + num[dot+1:]
	}
	if precision > 18 {
		return Asset{}, fmt.Errorf("asset %q: precision %d too large", s, precision)
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %q: %w", s, err)
	}
	a := Asset{Amount: amount, Symbol: Symbol{Precision: uint8(precision), Code: code}}
	if !a.Symbol.Valid() {
		return Asset{}, ErrInvalidSymbol
	}
	return a, nil
}

// String renders the canonical form with the symbol's precision.
func (a Asset) String() string {
	amount := a.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if a.Symbol.Precision == 0 {
		return fmt.Sprintf("%s%d %s", sign, amount, a.Symbol.Code)
	}
	pow := int64(1)
	for i := uint8(0); i < a.Symbol.Precision; i++ {
		pow *= 10
	}
	return fmt.Sprintf("%s%d.%0*d %s", sign, amount/pow, a.Symbol.Precision, amount%pow, a.Symbol.Code)
}

// MarshalJSON renders the asset as its canonical string.
func (a Asset) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON parses the canonical string form.
func (a *Asset) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("asset must be a string: %w", err)
	}
	parsed, err := ParseAsset(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
