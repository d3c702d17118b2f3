package voice

import (
	"sort"

	"github.com/harmoniccanvas/voicecheck/model"
)

const (
	Descant    model.VoicePart = "descant"
	Soprano    model.VoicePart = "soprano"
	Mezzo      model.VoicePart = "mezzoSoprano"
	Alto       model.VoicePart = "alto"
	Tenor      model.VoicePart = "tenor"
	Baritone   model.VoicePart = "baritone"
	Bass       model.VoicePart = "bass"
	Contrabass model.VoicePart = "contrabass"
)

// Order is the canonical high-to-low ordering used to iterate voice
// pairs and decide which of two parts is conventionally higher.
var Order = []model.VoicePart{
	Descant,
	Soprano,
	Mezzo,
	Alto,
	Tenor,
	Baritone,
	Bass,
	Contrabass,
}

var ordinals = func() map[model.VoicePart]int {
	m := make(map[model.VoicePart]int, len(Order))
	for i, p := range Order {
		m[p] = i
	}
	return m
}()

// Ordinal returns the canonical position of a part; unknown parts sort
// after all known ones.
func Ordinal(p model.VoicePart) int {
	if o, ok := ordinals[p]; ok {
		return o
	}
	return len(Order)
}

// SortParts orders parts canonically (ties broken by name, so unknown
// parts still sort deterministically).
func SortParts(parts []model.VoicePart) {
	sort.Slice(parts, func(i, j int) bool {
		oi, oj := Ordinal(parts[i]), Ordinal(parts[j])
		if oi != oj {
			return oi < oj
		}
		return parts[i] < parts[j]
	})
}

// EnabledParts returns the enabled parts of a score in canonical order.
// Disabled voices are excluded from every computation as if absent.
func EnabledParts(lines model.VoiceLines) []model.VoicePart {
	parts := make([]model.VoicePart, 0, len(lines))
	for p, line := range lines {
		if line.Enabled {
			parts = append(parts, p)
		}
	}
	SortParts(parts)
	return parts
}

// Pairs enumerates every unordered pair, higher part first.
func Pairs(parts []model.VoicePart) [][2]model.VoicePart {
	var res [][2]model.VoicePart
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			res = append(res, [2]model.VoicePart{parts[i], parts[j]})
		}
	}
	return res
}

// AdjacentPairs enumerates neighboring parts, higher part first.
func AdjacentPairs(parts []model.VoicePart) [][2]model.VoicePart {
	var res [][2]model.VoicePart
	for i := 0; i+1 < len(parts); i++ {
		res = append(res, [2]model.VoicePart{parts[i], parts[i+1]})
	}
	return res
}
