package useragent

import "sort"

func init() {
	sort.SliceStable(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].OrderHint < browserPatterns[j].OrderHint
	})
}
