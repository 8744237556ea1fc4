package jianpu

import (
	"errors"
	"reflect"
	"testing"
)

func note(degree int, octave Octave, dotted bool) Token {
	return Token{Kind: TokenNote, Degree: degree, Octave: octave, Dotted: dotted}
}

func single(tok Token) Element { return Element{Tokens: []Token{tok}} }

func TestParseBarBasics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Element
	}{
		{
			name: "plain degrees",
			text: "1 2 3",
			want: []Element{
				single(note(1, OctaveMid, false)),
				single(note(2, OctaveMid, false)),
				single(note(3, OctaveMid, false)),
			},
		},
		{
			name: "octave prefixes",
			text: "h1 l7",
			want: []Element{
				single(note(1, OctaveHigh, false)),
				single(note(7, OctaveLow, false)),
			},
		},
		{
			name: "dotted and rest",
			text: "5d 0",
			want: []Element{
				single(note(5, OctaveMid, true)),
				single(Token{Kind: TokenRest}),
			},
		},
		{
			name: "dotted with prefix",
			text: "h6d",
			want: []Element{single(note(6, OctaveHigh, true))},
		},
		{
			name: "extension dash",
			text: "3 - -",
			want: []Element{
				single(note(3, OctaveMid, false)),
				single(Token{Kind: TokenExtend}),
				single(Token{Kind: TokenExtend}),
			},
		},
		{
			name: "bar separator is cosmetic",
			text: "| 1 2 | 3 |",
			want: []Element{
				single(note(1, OctaveMid, false)),
				single(note(2, OctaveMid, false)),
				single(note(3, OctaveMid, false)),
			},
		},
		{
			name: "group with spaces",
			text: "(1 2)",
			want: []Element{{
				Tokens: []Token{note(1, OctaveMid, false), note(2, OctaveMid, false)},
				Group:  true,
			}},
		},
		{
			name: "group with commas and rest",
			text: "(0,5)",
			want: []Element{{
				Tokens: []Token{{Kind: TokenRest}, note(5, OctaveMid, false)},
				Group:  true,
			}},
		},
		{
			name: "group with dotted member",
			text: "(1d 2 3)",
			want: []Element{{
				Tokens: []Token{
					note(1, OctaveMid, true),
					note(2, OctaveMid, false),
					note(3, OctaveMid, false),
				},
				Group: true,
			}},
		},
		{
			name: "empty bar",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, err := ParseBar(tt.text, 0)
			if err != nil {
				t.Fatalf("ParseBar(%q): %v", tt.text, err)
			}
			if !reflect.DeepEqual(bar.Elements, tt.want) {
				t.Fatalf("ParseBar(%q) = %+v, want %+v", tt.text, bar.Elements, tt.want)
			}
		})
	}
}

func TestParseBarErrors(t *testing.T) {
	tests := []struct {
		text    string
		excerpt string
	}{
		{"8", "8"},
		{"1 x 3", "x"},
		{"h", "h"},
		{"h0", "h0"},
		{"0d", "0d"},
		{"1dd", "1dd"},
		{"12", "12"},
		{"(1)", "(1)"},
		{"(1 2", "(1 2"},
		{"1 )", ")"},
		{"(1 (2 3))", "("},
		{"1 , 2", ","},
		{"(1 | 2)", "|"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseBar(tt.text, 3)
			if err == nil {
				t.Fatalf("ParseBar(%q): expected error", tt.text)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseBar(%q): error %v is not a *ParseError", tt.text, err)
			}
			if pe.Bar != 3 {
				t.Errorf("bar index = %d, want 3", pe.Bar)
			}
			if pe.Excerpt != tt.excerpt {
				t.Errorf("excerpt = %q, want %q", pe.Excerpt, tt.excerpt)
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := ParseBar("1 2 badtoken", 0)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Offset != 4 {
		t.Errorf("offset = %d, want 4", pe.Offset)
	}
	if pe.Excerpt != "badtoken" {
		t.Errorf("excerpt = %q, want %q", pe.Excerpt, "badtoken")
	}
}
