package model

import (
	"strings"
)

type Currency string

const (
	NGN Currency = "NGN"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CNY Currency = "CNY"
	JPY Currency = "JPY"
	GHS Currency = "GHS"
	KES Currency = "KES"
	ZAR Currency = "ZAR"
	AED Currency = "AED"
)

var SupportedCurrencies = []Currency{NGN, USD, EUR, GBP, CAD, AUD, CNY, JPY, GHS, KES, ZAR, AED}

// ParseCurrency normalizes a raw code into a Currency. It does not check
// support; call IsSupported for that.
func ParseCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

func (c Currency) IsSupported() bool {
	for _, supportedCurrency := range SupportedCurrencies {
		if c == supportedCurrency {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
