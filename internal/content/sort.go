package content

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const defaultOrder = 999

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func sortItems(kind Kind, items []*Item) {
	if kind.sortedByOrder() {
		sort.SliceStable(items, func(i, j int) bool {
			return orderOf(items[i]) < orderOf(items[j])
		})
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		fi, fj := featuredOf(items[i]), featuredOf(items[j])
		if fi != fj {
			return fi
		}
		return dateOf(items[i]).After(dateOf(items[j]))
	})
}

func orderOf(item *Item) float64 {
	switch value := item.FrontMatter["order"].(type) {
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case uint64:
		return float64(value)
	case float64:
		return value
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return defaultOrder
}

func featuredOf(item *Item) bool {
	switch value := item.FrontMatter["featured"].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		return err == nil && parsed
	}
	return false
}

// dateOf returns the zero time for missing or unparseable dates so those
// items sort last.
func dateOf(item *Item) time.Time {
	switch value := item.FrontMatter["date"].(type) {
	case time.Time:
		return value
	case string:
		trimmed := strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
