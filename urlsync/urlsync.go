// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package urlsync

import (
	"net/url"
	"strings"

	"github.com/catchupdays/wishlist/filter"
)

// Pair is one key/value query parameter.
type Pair struct {
	Key   string
	Value string
}

// ParsePairs splits a raw query string into pairs, keeping their order and
// repeats. A leading '?' is ignored. Pairs whose escapes cannot be decoded
// are kept with the raw text.
func ParsePairs(rawQuery string) []Pair {
	rawQuery = strings.TrimPrefix(rawQuery, "?")

	var pairs []Pair
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		pairs = append(pairs, Pair{Key: unescape(key), Value: unescape(value)})
	}
	return pairs
}

// Decode builds the filter set described by a query string, one "key:value"
// token per pair.
func Decode(rawQuery string) filter.Set {
	var s filter.Set
	for _, p := range ParsePairs(rawQuery) {
		s = s.Add(filter.Join(p.Key, p.Value))
	}
	return s
}

// Pairs turns each token into a key/value pair split at the first ':'.
func Pairs(s filter.Set) []Pair {
	tokens := s.Tokens()
	pairs := make([]Pair, 0, len(tokens))
	for _, t := range tokens {
		key, value := filter.Split(t)
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs
}

// Encode renders the set as a query string of repeated key=value pairs in
// set order, without the leading '?'.
func Encode(s filter.Set) string {
	return EncodePairs(Pairs(s))
}

// EncodePairs renders pairs as a query string.
func EncodePairs(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Values converts pairs to url.Values. Repeated keys keep their order.
func Values(pairs []Pair) url.Values {
	v := make(url.Values, len(pairs))
	for _, p := range pairs {
		v.Add(p.Key, p.Value)
	}
	return v
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}
