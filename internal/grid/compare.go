package grid

import (
	"sync"

	"featureboard/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MissingBusinessValue is the sort key of a row without a linked business value.
const MissingBusinessValue = -1

// collate.Collator keeps internal buffers and is not safe for concurrent use.
var labels = struct {
	mu sync.Mutex
	c  *collate.Collator
}{c: collate.New(language.English)}

// CompareLabels orders two display labels the way a user reading them
// expects: locale aware, with case only breaking ties between otherwise
// equal letters. A missing label is passed as "" and sorts first.
func CompareLabels(a, b string) int {
	labels.mu.Lock()
	defer labels.mu.Unlock()
	return labels.c.CompareString(a, b)
}

func businessValueKey(f *model.Feature) int {
	v, ok := f.BusinessValue()
	if !ok {
		return MissingBusinessValue
	}
	return v
}

// CompareBusinessValue orders rows numerically by business value.
func CompareBusinessValue(a, b *model.Feature) int {
	va, vb := businessValueKey(a), businessValueKey(b)
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	default:
		return 0
	}
}

func compareName(a, b *model.Feature) int {
	return CompareLabels(a.Name, b.Name)
}

func compareStatus(a, b *model.Feature) int {
	return CompareLabels(a.StatusName(), b.StatusName())
}

func compareTeam(a, b *model.Feature) int {
	return CompareLabels(a.TeamName(), b.TeamName())
}

func compareMoscow(a, b *model.Feature) int {
	return CompareLabels(a.MoscowPriorityName(), b.MoscowPriorityName())
}
