package vcf2seq

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const testVCF = `##fileformat=VCFv4.2
#CHROM	POS	ID	REF	ALT	QUAL
chr1	50	rs1	C	T,G	60

chr2	7	.	.	AT	.
`

func TestReadVCF(t *testing.T) {
	var rows []Row
	err := ReadVCF(context.Background(), strings.NewReader(testVCF), func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].Line != 3 || rows[0].Chrom != "chr1" || rows[0].Pos != 50 || rows[0].Ref != "C" {
		t.Errorf("first row %+v", rows[0])
	}
	if !reflect.DeepEqual(rows[0].Alts, []string{"T", "G"}) {
		t.Errorf("alts %v", rows[0].Alts)
	}
	if rows[1].Line != 5 {
		t.Errorf("second row line %d, want 5", rows[1].Line)
	}

	vs := rows[0].Variants('.')
	if len(vs) != 2 || vs[0].Name() != "chr1_50_C_T" || vs[1].Name() != "chr1_50_C_G" {
		t.Errorf("multi-allelic expansion: %+v", vs)
	}
	if vs[0].Anchor() != 49 || vs[1].Line != 3 {
		t.Errorf("anchor %d line %d", vs[0].Anchor(), vs[1].Line)
	}

	ins := rows[1].Variants('.')[0]
	if !ins.Ref.IsAbsent() || ins.Alt.Text() != "AT" || ins.Name() != "chr2_7_._AT" {
		t.Errorf("insertion %+v", ins)
	}
}

func TestReadVCFErrors(t *testing.T) {
	tt := []struct {
		name string
		vcf  string
		want error
	}{
		{"uncommented header", "CHROM\tPOS\tID\tREF\tALT\n", ErrBadPosition},
		{"negative position", "chr1\t-5\t.\tA\tG\n", ErrBadPosition},
		{"too few columns", "chr1\t5\t.\tA\n", ErrBadRow},
	}
	for _, test := range tt {
		err := ReadVCF(context.Background(), strings.NewReader(test.vcf), func(Row) error { return nil })
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestReadVCFCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ReadVCF(ctx, strings.NewReader(testVCF), func(Row) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRowColumns(t *testing.T) {
	row, err := ParseRow("chr1\t50\trs1\tC\tT\t60", 4)
	if err != nil {
		t.Fatal(err)
	}
	got, err := row.Columns([]int{3, 6})
	if err != nil || !reflect.DeepEqual(got, []string{"rs1", "60"}) {
		t.Errorf("got %v (%v)", got, err)
	}
	if _, err := row.Columns([]int{7}); !errors.Is(err, ErrColumnRange) {
		t.Errorf("expected ErrColumnRange, got %v", err)
	}
}

func TestParseColumn(t *testing.T) {
	tt := []struct {
		tok  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"3", 3, true},
		{"A", 1, true},
		{"E", 5, true},
		{"Z", 26, true},
		{"AA", 27, true},
		{"aa", 27, true},
		{"AZ", 52, true},
		{"BA", 53, true},
		{"0", 0, false},
		{"A1", 0, false},
		{"", 0, false},
	}
	for _, test := range tt {
		got, err := ParseColumn(test.tok)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseColumn(%q) = %d, %v", test.tok, got, err)
		}
	}
}
