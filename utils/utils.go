package utils

import "unsafe"

// StringToBytes reinterprets s as a byte slice without copying.
// The result must not be mutated.
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
