package ingest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Row
	}{
		{
			name: "ascii commas",
			in:   "JD001,张三,北京\nJD002,李四",
			want: []Row{{"JD001", "张三", "北京"}, {"JD002", "李四"}},
		},
		{
			name: "full width comma and tab",
			in:   "JD001，张三\tA区",
			want: []Row{{"JD001", "张三", "A区"}},
		},
		{
			name: "crlf and blank lines",
			in:   "a,b\r\n\r\n  ,  \n c , d \n",
			want: []Row{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "empty",
			in:   "",
			want: []Row{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeText(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeGrid(t *testing.T) {
	grid := [][]any{
		{"订单号", "客户", "地址"},
		{nil, "", "  "},
		{" JD001 ", 12, 3.5},
		{"JD002", true, nil},
	}
	want := []Row{
		{"订单号", "客户", "地址"},
		{"JD001", "12", "3.5"},
		{"JD002", "true", ""},
	}
	if diff := cmp.Diff(want, NormalizeGrid(grid)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeStrings(t *testing.T) {
	got := NormalizeStrings([][]string{{" a ", "b"}, {"", ""}, {"c"}})
	want := []Row{{"a", "b"}, {"c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRow_Cell(t *testing.T) {
	r := Row{"a", "b"}
	if r.Cell(0) != "a" || r.Cell(1) != "b" || r.Cell(2) != "" || r.Cell(-1) != "" {
		t.Fatalf("unexpected cells: %q %q %q", r.Cell(0), r.Cell(1), r.Cell(2))
	}
}
