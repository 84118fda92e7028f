// Command igt inspects corpora of Interlinear Glossed Text: listing,
// statistics, Leipzig-rule checking and concept concordances.
//
// Corpus files are CSV or TSV (by extension) with the header columns
// ID, PHRASE, GLOSS and optionally TRANSLATION.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/glottolab/igt/pkg/lgr"
)

const version = "0.1.0"

// CLI defines the command-line interface for igt.
var CLI struct {
	Policy string `help:"YAML policy file overriding the default separator policy." type:"existingfile"`

	Ls          LsCmd          `cmd:"" help:"Pretty-print the IGTs in a corpus file."`
	Stats       StatsCmd       `cmd:"" help:"Describe a corpus: example/word/morpheme counts and conformance levels."`
	Check       CheckCmd       `cmd:"" help:"Validate every IGT against the Leipzig Glossing Rules."`
	Concordance ConcordanceCmd `cmd:"" help:"Write a concept concordance as TSV to stdout."`
	MakePolicy  MakePolicyCmd  `cmd:"" help:"Print the default separator policy as YAML."`
	Version     VersionCmd     `cmd:"" help:"Print version information."`
}

func loadPolicy() (*lgr.Policy, error) {
	if CLI.Policy == "" {
		return lgr.DefaultPolicy(), nil
	}
	pf, err := lgr.LoadPolicyFile(CLI.Policy)
	if err != nil {
		return nil, err
	}
	return lgr.ApplyPolicyToDefaults(pf)
}

// readCorpus reads a corpus file into IGT instances, preserving record
// order. The delimiter is inferred from the file extension.
func readCorpus(path string, policy *lgr.Policy) (*lgr.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus file '%s': %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("corpus file '%s' is empty", path)
	}

	col := make(map[string]int)
	for i, name := range rows[0] {
		col[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"PHRASE", "GLOSS"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("corpus file '%s' has no %s column", path, required)
		}
	}
	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	var igts []*lgr.IGT
	for n, row := range rows[1:] {
		igt, err := lgr.NewWithPolicy(
			field(row, "PHRASE"), field(row, "GLOSS"), field(row, "TRANSLATION"), policy)
		if err != nil {
			return nil, fmt.Errorf("corpus file '%s' record %d: %w", path, n+1, err)
		}
		igt.ID = field(row, "ID")
		if igt.ID == "" {
			igt.ID = strconv.Itoa(n)
		}
		igts = append(igts, igt)
	}
	return lgr.NewCorpus(igts...), nil
}

// LsCmd pretty-prints every IGT, optionally filtered by substring.
type LsCmd struct {
	Corpus string `arg:"" help:"Corpus CSV/TSV file." type:"existingfile"`
	Match  string `short:"m" help:"Only print IGTs whose phrase or translation contains this string."`
}

func (cmd *LsCmd) Run() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	corpus, err := readCorpus(cmd.Corpus, policy)
	if err != nil {
		return err
	}
	for _, igt := range corpus.IGTs() {
		if cmd.Match != "" &&
			!strings.Contains(igt.PhraseText(), cmd.Match) &&
			!strings.Contains(igt.Translation, cmd.Match) {
			continue
		}
		fmt.Printf("Example %s:\n", igt.ID)
		igt.Pprint(os.Stdout)
		fmt.Println()
	}
	return nil
}

// StatsCmd describes a corpus.
type StatsCmd struct {
	Corpus string `arg:"" help:"Corpus CSV/TSV file." type:"existingfile"`
}

func (cmd *StatsCmd) Run() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	corpus, err := readCorpus(cmd.Corpus, policy)
	if err != nil {
		return err
	}
	examples, words, morphemes := corpus.Stats()
	fmt.Printf("%-20s %d\n", "example", examples)
	fmt.Printf("%-20s %d\n", "word", words)
	fmt.Printf("%-20s %d\n", "morpheme", morphemes)
	fmt.Println()
	conformance := corpus.ConformanceStats()
	for _, level := range []lgr.Conformance{lgr.MorphemeAligned, lgr.WordAligned, lgr.Unaligned} {
		fmt.Printf("%-20s %d\n", level, conformance[level])
	}
	return nil
}

// CheckCmd validates every IGT, reporting violations with their rule
// numbers. With --strict the command fails if any violation is found.
type CheckCmd struct {
	Corpus  string `arg:"" help:"Corpus CSV/TSV file." type:"existingfile"`
	Strict  bool   `help:"Exit non-zero on the first corpus with violations."`
	Verbose bool   `short:"v" help:"Render each offending IGT before its violations."`
}

func (cmd *CheckCmd) Run() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	corpus, err := readCorpus(cmd.Corpus, policy)
	if err != nil {
		return err
	}
	violations := 0
	for _, igt := range corpus.IGTs() {
		vv := igt.Violations()
		if len(vv) == 0 {
			continue
		}
		if cmd.Verbose {
			igt.Pprint(os.Stdout)
		}
		for _, v := range vv {
			fmt.Printf("example %s: %v\n", igt.ID, v)
		}
		violations += len(vv)
	}
	if cmd.Strict && violations > 0 {
		return fmt.Errorf("%d rule violations", violations)
	}
	return nil
}

// ConcordanceCmd writes the concept index of a corpus as TSV.
type ConcordanceCmd struct {
	Corpus string `arg:"" help:"Corpus CSV/TSV file." type:"existingfile"`
	Kind   string `help:"Concept kind to index." enum:"grammar,lexicon" default:"grammar"`
}

func (cmd *ConcordanceCmd) Run() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	corpus, err := readCorpus(cmd.Corpus, policy)
	if err != nil {
		return err
	}
	index := corpus.Concepts(lgr.ConceptKind(cmd.Kind))

	concepts := make([]string, 0, len(index))
	for concept := range index {
		concepts = append(concepts, concept)
	}
	// Most frequent first, ties in concept order.
	sort.Slice(concepts, func(i, j int) bool {
		a, b := concepts[i], concepts[j]
		if len(index[a]) != len(index[b]) {
			return len(index[a]) > len(index[b])
		}
		return a < b
	})

	w := csv.NewWriter(os.Stdout)
	w.Comma = '\t'
	if err := w.Write([]string{"ID", "CONCEPT", "OCCURRENCE", "REF"}); err != nil {
		return err
	}
	for i, concept := range concepts {
		refs := make([]string, len(index[concept]))
		for j, ref := range index[concept] {
			refs[j] = ref.String()
		}
		record := []string{
			strconv.Itoa(i + 1),
			concept,
			strconv.Itoa(len(refs)),
			strings.Join(refs, " "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// MakePolicyCmd prints the compiled-in policy as a YAML starting point
// for customization.
type MakePolicyCmd struct{}

func (cmd *MakePolicyCmd) Run() error {
	data, err := yaml.Marshal(lgr.DefaultPolicyFile())
	if err != nil {
		return fmt.Errorf("failed to generate policy YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Printf("igt version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("igt"),
		kong.Description("Inspect and validate Interlinear Glossed Text corpora."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
