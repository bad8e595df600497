// Package breedplan plans breeding trees: given a creature and the perfect
// IVs (and optionally the nature) it must carry, it lays out every breeding
// pair, generation by generation, down to the single-attribute donors.
//
// 🧬 What is in the box?
//
//	pokemon/        IVs, natures, genders, types, egg groups and the Species descriptor
//	breedtree/      positions, role templates, the tree builder and the row walker
//	catalog/        YAML species database with lookups by number, name, egg group and type
//	plan/           request validation, catalog resolution and donor summaries
//	render/         lipgloss rendering of trees, donor tables and species
//	config/         breedplan.toml loading
//	logging/        zerolog setup shared by the CLI
//	cmd/breedplan   the command line front end
//
// The core (pokemon + breedtree) only establishes structure and per-node
// requirements. It does not choose, rank or simulate actual creatures.
//
// Quick ASCII example, Attack/Speed/HP without nature:
//
//	         [Atk Spe HP]            row 0, final
//	       /              \
//	  [Atk Spe]        [Atk HP]      row 1
//	   /     \          /    \
//	[Atk]  [Spe]     [Atk]  [HP]     row 2, donors A B A C
//
//	go install github.com/katalvlaran/breedplan/cmd/breedplan@latest
package breedplan
