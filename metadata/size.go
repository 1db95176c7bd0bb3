package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// sizePrefixes maps unit suffixes to their byte multipliers, covering
// both decimal (KB, MB, ...) and binary (KiB, MiB, ...) prefixes.
var sizePrefixes = map[string]float64{
	"B":   1,
	"KB":  1e3,
	"MB":  1e6,
	"GB":  1e9,
	"TB":  1e12,
	"PB":  1e15,
	"EB":  1e18,
	"ZB":  1e21,
	"YB":  1e24,
	"RB":  1e27,
	"QB":  1e30,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
	"TiB": 1 << 40,
	"PiB": 1 << 50,
	"EiB": 1 << 60,
	"ZiB": float64(1<<62) * 256,
	"YiB": float64(1<<62) * 256 * 1024,
	"RiB": float64(1<<62) * 256 * 1024 * 1024,
	"QiB": float64(1<<62) * 256 * 1024 * 1024 * 1024,
}

var (
	decimalUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	binaryUnits  = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// FormatBytes renders n with decimal (power-of-1000) prefixes.
func FormatBytes(n int64) string {
	return formatBytes(n, 1000, decimalUnits)
}

// FormatBytesBinary renders n with binary (power-of-1024) prefixes.
func FormatBytesBinary(n int64) string {
	return formatBytes(n, 1024, binaryUnits)
}

func formatBytes(n, unit int64, units []string) string {
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit && exp < len(units)-1; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(n)/float64(div), units[exp])
}

// ParseSize converts a human-readable size like "1.5MiB" or "2 GB"
// into bytes. A bare number is taken as bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parse size: empty input")
	}

	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		i--
	}
	num := strings.TrimSpace(s[:i])
	suffix := strings.TrimSpace(s[i:])

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	if suffix == "" {
		return int64(value), nil
	}

	mult, ok := sizePrefixes[suffix]
	if !ok {
		return 0, fmt.Errorf("parse size %q: unknown unit %q", s, suffix)
	}
	return int64(value * mult), nil
}
