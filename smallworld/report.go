package smallworld

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/metrics"
)

// Report formats accepted by WriteReport.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// outcomeDoc is the serialised form of an Outcome.
type outcomeDoc struct {
	Outcome   `yaml:",inline"`
	Added     []string `yaml:"added,flow"`
	Shortcuts []string `yaml:"shortcuts,flow"`
}

// WriteReport renders v, which must be an *Outcome or a []SweepPoint, in the
// given format.
func WriteReport(w io.Writer, v any, format string) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, v)
	case FormatText:
		return writeText(w, v)
	default:
		return fmt.Errorf("WriteReport: %q: %w", format, ErrUnknownFormat)
	}
}

func writeYAML(w io.Writer, v any) error {
	switch x := v.(type) {
	case *Outcome:
		v = outcomeDoc{Outcome: *x, Added: edgeStrings(x.Added), Shortcuts: edgeStrings(x.Shortcuts)}
	case []SweepPoint:
	default:
		return fmt.Errorf("WriteReport: unsupported value %T", v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch x := v.(type) {
	case *Outcome:
		writeOutcomeText(tw, x)
	case []SweepPoint:
		writeSweepText(tw, x)
	default:
		return fmt.Errorf("WriteReport: unsupported value %T", v)
	}

	return tw.Flush()
}

func writeOutcomeText(w io.Writer, o *Outcome) {
	c := o.Config
	fmt.Fprintf(w, "run\t%s\n", o.RunID)
	fmt.Fprintf(w, "ring\tnodes=%d hops=%d fraction=%g seed=%d\n", c.Nodes, c.Hops, c.Fraction, c.Seed)
	fmt.Fprintf(w, "rewired\t%d of %d candidates\n", len(o.Added), o.Candidates)
	fmt.Fprintf(w, "lattice path %d→%d\t%s\n", c.Source, c.Target, pathString(o.PathBefore))
	fmt.Fprintf(w, "rewired path %d→%d\t%s\n", c.Source, c.Target, pathString(o.PathAfter))
	fmt.Fprintf(w, "shortcuts used\t%s\n", strings.Join(edgeStrings(o.Shortcuts), " "))
	if o.Before != nil && o.After != nil {
		writeSummaryText(w, "lattice", o.Before)
		writeSummaryText(w, "rewired", o.After)
	}
}

func writeSummaryText(w io.Writer, label string, s *metrics.Summary) {
	fmt.Fprintf(w, "%s metrics\tL=%.3f diameter=%d C=%.3f degree=%d..%d connected=%t\n",
		label, s.AvgPathLength, s.Diameter, s.Clustering, s.MinDegree, s.MaxDegree, s.Connected)
}

func writeSweepText(w io.Writer, points []SweepPoint) {
	fmt.Fprintln(w, "fraction\ttrials\tL\tL/L0\tC\tC/C0\tdisconnected")
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%d\t%.3f±%.3f\t%.3f\t%.3f±%.3f\t%.3f\t%d\n",
			p.Fraction, p.Trials,
			p.PathLength, p.PathLengthStdDev, p.PathRatio,
			p.Clustering, p.ClusteringStdDev, p.ClusteringRatio,
			p.Disconnected)
	}
}

// pathString renders "k hops: a b c", or "unreachable" for an empty path.
func pathString(path []int) string {
	if len(path) == 0 {
		return "unreachable"
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%d hops: %s", len(path)-1, strings.Join(parts, " "))
}

func edgeStrings(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.String()
	}

	return out
}
