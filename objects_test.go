// scanpdf - a library for writing image-based PDF files
// Copyright (C) 2026  The scanpdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanpdf

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-3), "-3"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number(2), "2"},
		{Number(0.5), "0.5"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("x#y"), "/x#23y"},
		{String("hello"), "(hello)"},
		{String("a (test"), `(a \(test)`},
		{String("a\nb"), `(a\nb)`},
		{String([]byte{0}), `(\000)`},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Reference(5), "5 0 R"},
		{&Rectangle{0, 0, 612, 792}, "[0 0 612 792]"},
		{&Rectangle{0, 0, 595.2756, 841.8898}, "[0 0 595.28 841.89]"},
		{Raw("<< /X 1 0 R >>"), "<< /X 1 0 R >>"},
	}
	for _, test := range cases {
		out := FormatObject(test.in)
		if out != test.out {
			t.Errorf("object wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func FuzzString(f *testing.F) {
	f.Add("hello")
	f.Add("a (test")
	f.Add("line\nbreak")
	f.Add(string([]byte{0, 1, 200, 255}))
	f.Fuzz(func(t *testing.T, s string) {
		out := FormatObject(String(s))
		if len(out) < 2 || out[0] != '(' || out[len(out)-1] != ')' {
			t.Fatalf("missing parentheses: %q", out)
		}
		for i := 0; i < len(out); i++ {
			if out[i] < 32 || out[i] > 126 {
				t.Errorf("unescaped byte %d at position %d in %q",
					out[i], i, out)
			}
		}
	})
}

func TestDate(t *testing.T) {
	in := time.Date(2026, 8, 30, 12, 30, 5, 0, time.UTC)
	got := FormatObject(Date(in))
	want := "(D:20260830123005+00'00)"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong date string (-want +got):\n%s", d)
	}
}

func TestResources(t *testing.T) {
	res := &Resources{
		XObjects: map[Name]Reference{
			"Img": 1,
			"Alt": 2,
		},
	}
	got := FormatObject(res)
	want := "<< /XObject << /Alt 2 0 R /Img 1 0 R >> >>"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong resource dict (-want +got):\n%s", d)
	}
}
