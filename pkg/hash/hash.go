// Package hash provides hashing utilities for schema fingerprints.
package hash

import (
	"crypto/md5"
	"encoding/hex"
)

// FingerprintLen is the number of hex characters in a fingerprint.
const FingerprintLen = 16

// Fingerprint returns the first FingerprintLen hex characters of MD5(data).
func Fingerprint(data []byte) string {
	return MD5Sum(data)[:FingerprintLen]
}

// MD5Sum returns the full MD5 hash of data as hex.
func MD5Sum(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
