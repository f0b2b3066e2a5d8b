package qr

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
)

const (
	// MinTable is the lowest table number that can be printed.
	MinTable = 1
	// MaxTable is the highest table number that can be printed.
	MaxTable = 99
)

// NormalizeTable turns operator input such as "5", "T7" or "t12" into the
// canonical "T05" form.
func NormalizeTable(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(strings.TrimPrefix(value, "T"), "t")
	if value == "" {
		return "", apperrors.New(apperrors.CodeValidation, "table number is required")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", apperrors.New(apperrors.CodeValidation, fmt.Sprintf("table number %q must be numeric", raw))
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < MinTable || n > MaxTable {
		return "", apperrors.WithMetadata(
			apperrors.CodeValidation,
			fmt.Sprintf("table number must be between %d and %d", MinTable, MaxTable),
			map[string]string{"min": strconv.Itoa(MinTable), "max": strconv.Itoa(MaxTable)},
		)
	}
	return fmt.Sprintf("T%02d", n), nil
}

// ClampRange bounds both ends to [MinTable, MaxTable] and orders them.
func ClampRange(from, to int) (int, int) {
	from = clamp(from)
	to = clamp(to)
	if from > to {
		from, to = to, from
	}
	return from, to
}

func clamp(n int) int {
	if n < MinTable {
		return MinTable
	}
	if n > MaxTable {
		return MaxTable
	}
	return n
}

// DownloadName is the file name offered when saving a table's QR image.
func DownloadName(table string) string {
	return "progressive-bar-" + table + ".png"
}
