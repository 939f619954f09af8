// Package report renders reduced problems and enumeration results as text,
// JSON or YAML.
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/occupancy/enumerate"
	"github.com/katalvlaran/occupancy/normalize"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported Format value.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Problem is the serialisable view of a normalize.Reduced.
type Problem struct {
	Particles      int     `json:"particles" yaml:"particles"`
	Energy         float64 `json:"energy" yaml:"energy"`
	GroundEnergy   float64 `json:"ground_energy" yaml:"ground_energy"`
	Excess         int     `json:"excess" yaml:"excess"`
	Levels         int     `json:"levels" yaml:"levels"`
	Frozen         int     `json:"frozen" yaml:"frozen"`
	ResidualLevels int     `json:"residual_levels" yaml:"residual_levels"`
	ResidualSum    int     `json:"residual_sum" yaml:"residual_sum"`
	ResidualEnergy float64 `json:"residual_energy" yaml:"residual_energy"`
	GroundState    bool    `json:"ground_state" yaml:"ground_state"`
}

// Row is one configuration with its 1-based position in the output.
type Row struct {
	Index     int   `json:"index" yaml:"index"`
	Occupancy []int `json:"occupancy" yaml:"occupancy,flow"`
}

// Document is the full JSON/YAML output of an enumeration.
type Document struct {
	Problem        Problem `json:"problem" yaml:"problem"`
	Count          int     `json:"count" yaml:"count"`
	Nodes          int64   `json:"nodes" yaml:"nodes"`
	Pruned         int64   `json:"pruned" yaml:"pruned"`
	Configurations []Row   `json:"configurations,omitempty" yaml:"configurations,omitempty"`
}

// NewProblem converts p.
func NewProblem(p normalize.Reduced) Problem {
	return Problem{
		Particles:      p.Particles,
		Energy:         p.Energy.Float(),
		GroundEnergy:   p.GroundEnergy.Float(),
		Excess:         p.Excess(),
		Levels:         p.MaxLevel,
		Frozen:         p.Frozen,
		ResidualLevels: p.ResidualLevels,
		ResidualSum:    p.ResidualSum,
		ResidualEnergy: p.ResidualEnergy.Float(),
		GroundState:    p.IsGroundState(),
	}
}

// NewDocument converts p and res. res may be nil.
func NewDocument(p normalize.Reduced, res *enumerate.Result) Document {
	doc := Document{Problem: NewProblem(p)}
	if res == nil {
		return doc
	}
	doc.Count = res.Count
	doc.Nodes = res.Nodes
	doc.Pruned = res.Pruned
	if len(res.Configurations) > 0 {
		doc.Configurations = make([]Row, len(res.Configurations))
		for i, c := range res.Configurations {
			doc.Configurations[i] = Row{Index: i + 1, Occupancy: []int(c)}
		}
	}

	return doc
}

// Write renders an enumeration result.
func Write(w io.Writer, f Format, p normalize.Reduced, res *enumerate.Result) error {
	doc := NewDocument(p, res)
	switch f {
	case Text:
		return writeText(w, doc)
	case JSON:
		return writeJSON(w, doc)
	case YAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteProblem renders only the reduced problem.
func WriteProblem(w io.Writer, f Format, p normalize.Reduced) error {
	pr := NewProblem(p)
	switch f {
	case Text:
		_, err := fmt.Fprintln(w, problemLine(pr))

		return err
	case JSON:
		return writeJSON(w, pr)
	case YAML:
		return writeYAML(w, pr)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func problemLine(p Problem) string {
	return fmt.Sprintf("N=%d E=%g ground=%g excess=%d levels=%d frozen=%d residual=%d (sum=%d energy=%g)",
		p.Particles, p.Energy, p.GroundEnergy, p.Excess, p.Levels, p.Frozen,
		p.ResidualLevels, p.ResidualSum, p.ResidualEnergy)
}

func writeText(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, problemLine(doc.Problem))

	width := len(fmt.Sprint(len(doc.Configurations)))
	for _, row := range doc.Configurations {
		fmt.Fprintf(bw, "%*d: ", width, row.Index)
		for i, v := range row.Occupancy {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprint(bw, v)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "total configurations: %d\n", doc.Count)

	return bw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
