package cli

import (
	"errors"
	"flag"
	"reflect"
	"testing"

	"github.com/mendelics/vcf2seq"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-g", "ref.fa", "in.vcf")
	if o.VCF != "in.vcf" || o.Genome != "ref.fa" {
		t.Errorf("paths %+v", o)
	}
	if o.Size != 31 || o.Selection != vcf2seq.SelectAlt || o.Blank != '.' || o.Output != "" || o.Alias {
		t.Errorf("defaults %+v", o)
	}
}

func TestFlagsAfterPositional(t *testing.T) {
	o := mustParse(t, "in.vcf", "--genome", "ref.fa", "-s", "30", "--type", "both", "-b", "-", "-o", "out.fa")
	if o.VCF != "in.vcf" || o.Size != 30 || o.Selection != vcf2seq.SelectBoth || o.Blank != '-' || o.Output != "out.fa" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestAddColumns(t *testing.T) {
	o := mustParse(t, "-g", "ref.fa", "-a", "3,AA", "--add-columns", "E", "in.vcf")
	if want := []int{3, 27, 5}; !reflect.DeepEqual(o.Columns, want) {
		t.Errorf("columns %v, want %v", o.Columns, want)
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Errorf("version: %+v %v", o, err)
	}
}

func TestErrors(t *testing.T) {
	tt := []struct {
		name string
		args []string
	}{
		{"no vcf", []string{"-g", "ref.fa"}},
		{"no genome", []string{"in.vcf"}},
		{"two vcf", []string{"-g", "ref.fa", "a.vcf", "b.vcf"}},
		{"zero size", []string{"-g", "ref.fa", "-s", "0", "in.vcf"}},
		{"negative size", []string{"-g", "ref.fa", "-s", "-3", "in.vcf"}},
		{"bad type", []string{"-g", "ref.fa", "-t", "all", "in.vcf"}},
		{"long blank", []string{"-g", "ref.fa", "-b", "..", "in.vcf"}},
		{"nucleotide blank", []string{"-g", "ref.fa", "-b", "a", "in.vcf"}},
		{"bad column", []string{"-g", "ref.fa", "-a", "3x", "in.vcf"}},
	}
	for _, test := range tt {
		if _, err := ParseArgs(newFS(), test.args); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}
