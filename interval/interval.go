package interval

// Normalize reduces any signed semitone interval to 0..11.
func Normalize(semitones int) int {
	return ((semitones % 12) + 12) % 12
}

// IsPerfectFifth reports whether the interval normalizes to a perfect
// fifth or fourth (inversionally equivalent).
func IsPerfectFifth(semitones int) bool {
	n := Normalize(semitones)
	return n == 5 || n == 7
}

// IsOctave reports whether the interval normalizes to an octave or
// unison.
func IsOctave(semitones int) bool {
	return Normalize(semitones) == 0
}

type Dissonance int

const (
	NotDissonant Dissonance = iota
	Second
	Tritone
	Seventh
)

func ClassifyDissonance(semitones int) Dissonance {
	switch Normalize(semitones) {
	case 1, 2:
		return Second
	case 6:
		return Tritone
	case 10, 11:
		return Seventh
	default:
		return NotDissonant
	}
}

// Resolves reports whether next is an acceptable resolution interval
// for the dissonance: a tritone resolves inward to a 3rd or outward to
// a 6th, a 7th to a 6th or the octave, a 2nd to a 3rd or unison.
func (d Dissonance) Resolves(next int) bool {
	n := Normalize(next)
	switch d {
	case Tritone:
		return n == 3 || n == 4 || n == 8 || n == 9
	case Seventh:
		return n == 8 || n == 9 || n == 0
	case Second:
		return n == 3 || n == 4 || n == 0
	default:
		return true
	}
}

func (d Dissonance) String() string {
	switch d {
	case Second:
		return "second"
	case Tritone:
		return "tritone"
	case Seventh:
		return "seventh"
	default:
		return "consonant"
	}
}

type Motion int

const (
	Oblique Motion = iota
	Similar
	Contrary
)

func direction(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

// ClassifyMotion classifies the motion of two voices across a beat
// transition. A static voice makes the motion oblique; oblique never
// counts as similar or contrary.
func ClassifyMotion(prevA, currA, prevB, currB int) Motion {
	dirA := direction(prevA, currA)
	dirB := direction(prevB, currB)
	if dirA == 0 || dirB == 0 {
		return Oblique
	}
	if dirA == dirB {
		return Similar
	}
	return Contrary
}
