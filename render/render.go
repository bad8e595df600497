// Package render formats breeding trees, donor lists and catalog entries for
// the terminal with lipgloss.
//
// Colour is applied only when Options.Color is set and the output writer is
// a terminal; otherwise the text is plain and stable, which is what tests and
// pipes get.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/breedplan/breedtree"
	"github.com/katalvlaran/breedplan/plan"
	"github.com/katalvlaran/breedplan/pokemon"
)

// Palette.
var (
	colorTitle  = lipgloss.Color("#2CD7C7")
	colorIV     = lipgloss.Color("#20B9B4")
	colorNature = lipgloss.Color("#F4D03F")
	colorRole   = lipgloss.Color("#E67E22")
	colorMuted  = lipgloss.Color("#5F7A84")
)

// Options configures a Renderer.
type Options struct {
	// Color enables ANSI styling.
	Color bool
	// ShowRoles prefixes each leaf with its template role.
	ShowRoles bool
	// Output is the writer the text is destined for; its colour profile is
	// detected. Defaults to os.Stdout.
	Output io.Writer
}

// Renderer turns domain values into display strings.
type Renderer struct {
	opts   Options
	lg     *lipgloss.Renderer
	title  lipgloss.Style
	pos    lipgloss.Style
	iv     lipgloss.Style
	nature lipgloss.Style
	role   lipgloss.Style
	muted  lipgloss.Style
}

// New returns a Renderer for opts.
func New(opts Options) *Renderer {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	lg := lipgloss.NewRenderer(out)
	if !opts.Color {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		opts:   opts,
		lg:     lg,
		title:  lg.NewStyle().Bold(true).Foreground(colorTitle),
		pos:    lg.NewStyle().Foreground(colorMuted),
		iv:     lg.NewStyle().Foreground(colorIV),
		nature: lg.NewStyle().Foreground(colorNature).Italic(true),
		role:   lg.NewStyle().Bold(true).Foreground(colorRole),
		muted:  lg.NewStyle().Foreground(colorMuted),
	}
}

// Tree renders t generation by generation, donors first and the final
// creature last. A generation is one row of the tree; generation 1 is the
// leaf row.
func (r *Renderer) Tree(t *breedtree.Tree) string {
	var sb strings.Builder
	g := t.Generations()
	lastRow := -1

	_, err := breedtree.Walk(t, breedtree.WithOrder(breedtree.LeavesFirst),
		breedtree.WithOnVisit(func(p breedtree.Position, n breedtree.Node) error {
			if int(p.Row) != lastRow {
				lastRow = int(p.Row)
				gen := uint(g) - p.Row
				label := fmt.Sprintf("Generation %d", gen)
				switch p.Row {
				case 0:
					label += " (final)"
				case g.LeafRow():
					label += fmt.Sprintf(" (%d donors)", g.Width(p.Row))
				}
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(r.title.Render(label))
				sb.WriteString("\n")
			}
			sb.WriteString("  ")
			sb.WriteString(r.pos.Render(p.String()))
			sb.WriteString(" ")
			if role, ok := t.RoleAt(p); ok && r.opts.ShowRoles && p.Row == g.LeafRow() {
				sb.WriteString(r.role.Render("[" + role.String() + "]"))
				sb.WriteString(" ")
			}
			sb.WriteString(r.Requirement(n))
			if pl, ok := n.Placement(); ok {
				sb.WriteString("  ")
				sb.WriteString(r.muted.Render(placementText(pl)))
			}
			sb.WriteString("\n")
			return nil
		}))
	if err != nil {
		return err.Error()
	}
	if missing := t.Unresolved(); len(missing) > 0 {
		sb.WriteString(r.muted.Render(fmt.Sprintf("unresolved: %v", missing)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Requirement renders a node requirement as "Attack Speed + Adamant".
func (r *Renderer) Requirement(n breedtree.Node) string {
	parts := make([]string, 0, len(n.IVs)+1)
	for _, iv := range n.IVs {
		parts = append(parts, r.iv.Render(iv.String()))
	}
	if n.HasNature() {
		nat := r.nature.Render(n.Nature.String())
		if len(parts) > 0 {
			nat = "+ " + nat
		}
		parts = append(parts, nat)
	}
	if len(parts) == 0 {
		return r.muted.Render("-")
	}

	return strings.Join(parts, " ")
}

// Donors renders the donor summary of t as a table.
func (r *Renderer) Donors(t *breedtree.Tree) string {
	s := plan.Summarize(t)
	rows := make([][]string, 0, len(s))
	for _, d := range s {
		carries := d.IV.String()
		if d.Role.IsNature() {
			carries = d.Nature.String()
		}
		rows = append(rows, []string{d.Role.String(), carries, fmt.Sprint(d.Count)})
	}
	rows = append(rows, []string{"", "total", fmt.Sprint(s.Total())})

	return r.table([]string{"Role", "Carries", "Count"}, rows)
}

// Templates renders the leaf layouts of ts with their role counts.
func (r *Renderer) Templates(ts []breedtree.Template) string {
	rows := make([][]string, 0, len(ts))
	for _, tpl := range ts {
		leaves := tpl.Leaves()
		names := make([]string, len(leaves))
		for i, role := range leaves {
			names[i] = role.String()
		}
		rows = append(rows, []string{
			fmt.Sprint(uint8(tpl.Generations())),
			fmt.Sprint(tpl.Natured()),
			fmt.Sprint(tpl.Len()),
			roleCounts(tpl),
			strings.Join(names, " "),
		})
	}

	return r.table([]string{"Generations", "Natured", "Donors", "Roles", "Leaves"}, rows)
}

// Species renders one catalog entry.
func (r *Renderer) Species(s pokemon.Species) string {
	var sb strings.Builder
	sb.WriteString(r.title.Render(s.String()))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  types:      %s\n", joinStrings(s.TypeList()))
	fmt.Fprintf(&sb, "  egg groups: %s\n", joinStrings(s.EggGroupList()))
	switch ratio, err := s.MaleRatio(); {
	case s.IsGenderless():
		sb.WriteString("  gender:     genderless\n")
	case err != nil:
		fmt.Fprintf(&sb, "  gender:     %s\n", r.muted.Render(err.Error()))
	default:
		fmt.Fprintf(&sb, "  gender:     %.1f%% male\n", ratio*100)
	}

	return sb.String()
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	header := r.lg.NewStyle().Bold(true).Padding(0, 1)
	cell := r.lg.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}

func roleCounts(tpl breedtree.Template) string {
	counts := tpl.RoleCounts()
	parts := make([]string, 0, len(counts))
	roles := tpl.Roles()
	if tpl.Natured() {
		roles = append(roles, breedtree.RoleNature)
	}
	for _, role := range roles {
		parts = append(parts, fmt.Sprintf("%s×%d", role, counts[role]))
	}
	return strings.Join(parts, " ")
}

func placementText(p breedtree.Placement) string {
	if p.Gender == pokemon.AnyGender {
		return p.Species.String()
	}
	return fmt.Sprintf("%s (%s)", p.Species, p.Gender)
}

func joinStrings[T fmt.Stringer](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
