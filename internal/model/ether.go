package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

const etherDecimals = 18

var weiPerEther = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(etherDecimals))

// FormatEther renders a wei amount as a decimal ether string without trailing zeros.
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		return "0"
	}
	quo := new(uint256.Int).Div(wei, weiPerEther)
	rem := new(uint256.Int).Mod(wei, weiPerEther)
	if rem.IsZero() {
		return quo.Dec()
	}
	frac := rem.Dec()
	frac = strings.Repeat("0", etherDecimals-len(frac)) + frac
	return quo.Dec() + "." + strings.TrimRight(frac, "0")
}

// ParseEther converts a decimal ether string such as "1.05" to wei.
func ParseEther(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("amount %q has more than %d decimals", s, etherDecimals)
	}
	if !IsDigits(whole) || (frac != "" && !IsDigits(frac)) {
		return nil, fmt.Errorf("amount %q is not a decimal number", s)
	}
	frac += strings.Repeat("0", etherDecimals-len(frac))

	w, err := uint256.FromDecimal(whole)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	f, err := uint256.FromDecimal(frac)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	wei, overflow := new(uint256.Int).MulOverflow(w, weiPerEther)
	if overflow {
		return nil, fmt.Errorf("amount %q overflows uint256", s)
	}
	if _, overflow = wei.AddOverflow(wei, f); overflow {
		return nil, fmt.Errorf("amount %q overflows uint256", s)
	}
	return wei, nil
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
