// Package pokemon describes the creatures a breeding plan is built for:
// the six inheritable stat rolls (IVs), natures, genders, elemental types,
// egg groups and the Species descriptor itself.
//
// What:
//
//   - IV, Nature, Gender, Type and EggGroup are small closed enumerations with
//     String() and Parse* helpers (case-insensitive, common short aliases).
//   - Species carries number, name, one or two types, one or two egg groups and
//     the male percentage as text, exactly as species data sheets ship it.
//   - Species.MaleRatio parses that text on demand.
//   - GenderlessLine reports the evolution line of genderless species, which can
//     only breed within their own line (or with Ditto).
//
// Errors:
//
//   - ErrMalformedPercentage: the male percentage text is not a number in [0,100].
//   - ErrUnknownIV, ErrUnknownNature, ErrUnknownType, ErrUnknownEggGroup,
//     ErrUnknownGender: Parse* received an unrecognised name.
//
// The package holds no state; every value is safe to share between goroutines.
package pokemon
