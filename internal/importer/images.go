package importer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseImageList decodes the raw image cell into a normalized URL list.
//
// A cell starting with '[' is first tried as a JSON array; when that fails
// the cell falls back to pipe-separated splitting. Array elements are used
// as the URL list: strings as-is, numbers stringified, anything else
// dropped. Pieces are trimmed and empty pieces dropped. Empty input yields
// an empty list. This function never fails.
func ParseImageList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	if strings.HasPrefix(text, "[") {
		var elements []interface{}
		if err := json.Unmarshal([]byte(text), &elements); err == nil {
			pieces := make([]string, 0, len(elements))
			for _, e := range elements {
				switch v := e.(type) {
				case string:
					pieces = append(pieces, v)
				case float64:
					pieces = append(pieces, strconv.FormatFloat(v, 'f', -1, 64))
				}
			}
			return normalizeURLs(pieces)
		}
	}

	return normalizeURLs(strings.Split(text, "|"))
}

func normalizeURLs(pieces []string) []string {
	urls := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p != "" {
			urls = append(urls, p)
		}
	}
	return urls
}
