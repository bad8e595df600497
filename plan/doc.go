// Package plan turns a user request ("Charizard with perfect Attack, Speed and
// HP, Adamant") into a breeding tree.
//
// What:
//
//   - Request is the YAML/CLI shape of a request: species, IV names, nature.
//   - Resolve checks the request against a catalog and yields the final node
//     and the role assignment (roles A, B, C… take the IVs in request order).
//   - Build runs breedtree.Build and bundles the result with the donor summary.
//
// Errors:
//
//   - ErrInvalidRequest for a request failing validation (missing species,
//     IV count outside 2..5, repeated or unknown IV, unknown nature).
//   - catalog.ErrSpeciesNotFound when the species is not in the catalog.
//   - Any breedtree error, wrapped.
package plan
