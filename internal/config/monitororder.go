package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// space matches ASCII whitespace plus vertical tab, Unicode separators and BOM.
const space = `[\s\v\p{Z}\x{FEFF}]*`

var (
	monitorOrderRe = regexp.MustCompile(`"monitorOrder"` + space + `:` + space + `\[([^\]]*)\]`)
	quotedRe       = regexp.MustCompile(`"([^"]+)"`)
)

// ParseMonitorOrder extracts the monitorOrder list from raw JSONC config text.
// It searches the text instead of decoding it, so comments and trailing commas
// elsewhere in the file do not matter. Only the first match is used and the
// list ends at the first ']', even inside a quoted name. It returns an empty
// slice when nothing is found.
func ParseMonitorOrder(rawConfigText string) (order []string) {
	defer func() {
		if recover() != nil {
			order = []string{}
		}
	}()

	order = []string{}
	match := monitorOrderRe.FindStringSubmatch(rawConfigText)
	if match == nil || match[1] == "" {
		return order
	}
	for _, item := range quotedRe.FindAllStringSubmatch(match[1], -1) {
		order = append(order, item[1])
	}
	return order
}

// LoadMonitorOrder reads a shell config file and parses its monitorOrder.
// A missing file yields an empty order.
func LoadMonitorOrder(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read shell config: %w", err)
	}
	return ParseMonitorOrder(string(data)), nil
}
