package ble

import "strings"

// The Bluetooth SIG base UUID, 0000xxxx-0000-1000-8000-00805f9b34fb, with
// dashes removed and the 16-bit short form blanked out.
const (
	sigBasePrefix = "0000"
	sigBaseSuffix = "00001000800000805f9b34fb"
)

// NormalizeUUID converts a UUID string to the canonical lookup form used
// throughout this module: lowercase, no dashes, no surrounding braces, no 0x
// prefix. Full 128-bit UUIDs built on the Bluetooth SIG base are collapsed to
// their 16-bit short form (e.g. "0000180a-0000-1000-8000-00805f9b34fb" ->
// "180a").
func NormalizeUUID(uuid string) string {
	s := strings.ToLower(strings.TrimSpace(uuid))
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	s = strings.TrimPrefix(s, "0x")
	s = strings.ReplaceAll(s, "-", "")
	if len(s) == 32 && strings.HasPrefix(s, sigBasePrefix) && strings.HasSuffix(s, sigBaseSuffix) {
		return s[4:8]
	}
	return s
}
