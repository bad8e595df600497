// Package breedtree builds the lineage tree of a breeding plan: which donor
// sits at every leaf, and which perfect IVs (and nature) every intermediate
// offspring must carry on the way to the final creature.
//
// What:
//
//   - Position addresses a node of a complete binary tree by (row, column).
//     Row 0 is the final creature; rows grow toward the donors. The pair at
//     (r+1, 2c) and (r+1, 2c+1) is bred into (r, c).
//   - Template is a fixed leaf layout per (Generations, natured) pair that maps
//     every leaf to a Role: one of the lettered donors A–E or the Nature donor.
//   - Build materialises the leaves of a template through a role→IV Assignment
//     and merges them upward row by row, concatenating the IV lists of each
//     pair left first. The result is a *Tree holding one Node
//     per position (2^G − 1 in total).
//   - Walk visits a built tree root-first or leaves-first.
//
// Why:
//
// Each breeding consumes both parents and yields a single offspring, so a
// creature with N perfect IVs needs 2^(N-1) single-IV donors, plus one more
// generation when a nature is also passed down. The leaf layouts are known
// optimal arrangements and are treated as data, not computed.
//
// Complexity:
//
//   - Build: O(2^G) time and memory; every node is created once.
//   - Walk:  O(2^G).
//
// Errors:
//
//   - ErrUnsupportedGenerationCount: no template for the requested IV count
//     (supported: 2–5 IVs, with or without a nature).
//   - ErrMissingTemplateEntry: a role used by the template has no IV assigned.
//   - ErrUnexpectedRole: the assignment names a role the template never uses.
//   - ErrAssignmentMismatch: an assigned IV is not requested by the final node,
//     or two roles share one IV.
//   - ErrUnresolvedPositions: construction left positions without a node.
//   - ErrMissingRoot: the tree has no node at (0,0).
//
// Concurrency: a Tree is a plain value owned by its caller. Build does not
// retain its inputs. Share a Tree between goroutines only with external locking.
package breedtree
