package pokemon

// EvolutionLine lists the species numbers of one evolution family, base form
// first. Third is zero when the family has only two stages.
type EvolutionLine struct {
	Base, Second, Third uint16
}

// Members returns the non-zero species numbers of the line.
func (l EvolutionLine) Members() []uint16 {
	if l.Third == 0 {
		return []uint16{l.Base, l.Second}
	}
	return []uint16{l.Base, l.Second, l.Third}
}

// Contains reports whether number belongs to the line.
func (l EvolutionLine) Contains(number uint16) bool {
	return number != 0 && (number == l.Base || number == l.Second || number == l.Third)
}

var (
	magnemiteLine = EvolutionLine{81, 82, 462}
	staryuLine    = EvolutionLine{120, 121, 0}
	bronzorLine   = EvolutionLine{436, 437, 0}
	beldumLine    = EvolutionLine{374, 375, 376}
	baltoyLine    = EvolutionLine{343, 344, 0}
	voltorbLine   = EvolutionLine{100, 101, 0}
	porygonLine   = EvolutionLine{137, 233, 474}
	klinkLine     = EvolutionLine{599, 600, 601}
	golettLine    = EvolutionLine{622, 623, 0}
)

// genderlessLines indexes every breedable genderless species by number.
var genderlessLines = map[uint16]EvolutionLine{
	81: magnemiteLine, 82: magnemiteLine, 462: magnemiteLine,
	120: staryuLine, 121: staryuLine,
	436: bronzorLine, 437: bronzorLine,
	374: beldumLine, 375: beldumLine, 376: beldumLine,
	343: baltoyLine, 344: baltoyLine,
	100: voltorbLine, 101: voltorbLine,
	137: porygonLine, 233: porygonLine, 474: porygonLine,
	599: klinkLine, 600: klinkLine, 601: klinkLine,
	622: golettLine, 623: golettLine,
}

// GenderlessLine returns the evolution line a genderless species breeds within.
// The second result is false for species that are not genderless breeders.
func GenderlessLine(number uint16) (EvolutionLine, bool) {
	l, ok := genderlessLines[number]
	return l, ok
}
