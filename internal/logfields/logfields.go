package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPost      = "post"
	KeyKind      = "fragment_kind"
	KeyFragments = "fragments"
	KeyBytes     = "bytes"
	KeySeason    = "season"
	KeyFormat    = "format"
	KeyPath      = "path"
	KeyAddress   = "address"
	KeyDuration  = "duration_ms"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Post(title string) slog.Attr     { return slog.String(KeyPost, title) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Fragments(n int) slog.Attr       { return slog.Int(KeyFragments, n) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Season(s string) slog.Attr       { return slog.String(KeySeason, s) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Address(a string) slog.Attr      { return slog.String(KeyAddress, a) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
