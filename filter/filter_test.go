package filter

import (
	"testing"

	"github.com/syntax-framework/statics/cmn"
	"github.com/tdewolff/test"
)

func Test_Filter_Excludes(t *testing.T) {
	var tests = []struct {
		expression string
		entry      Entry
		excluded   bool
	}{
		{`hidden`, Entry{Path: ".DS_Store"}, true},
		{`hidden`, Entry{Path: "vendor/script.js"}, false},
		{`ext in ["map", "ts"]`, Entry{Path: "vendor/app.js.map"}, true},
		{`ext in ["map", "ts"]`, Entry{Path: "vendor/app.js"}, false},
		{`isDir && name == "node_modules"`, Entry{Path: "vendor/node_modules", IsDir: true}, true},
		{`isDir && name == "node_modules"`, Entry{Path: "node_modules"}, false},
		{`dir == "vendor" && size > 10`, Entry{Path: "vendor/big.js", Size: 11}, true},
		{`dir == "vendor" && size > 10`, Entry{Path: "big.js", Size: 11}, false},
		{`path == "a/b/c.css"`, Entry{Path: "a/b/c.css"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.expression+" "+tt.entry.Path, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatal(err)
			}
			excluded, err := f.Excludes(tt.entry)
			if err != nil {
				t.Fatal(err)
			}
			test.That(t, excluded == tt.excluded, "Filter.Excludes(entry) | invalid output", excluded)
		})
	}
}

func Test_Filter_Empty_Expression(t *testing.T) {
	f, err := Compile("  ")
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, f == nil, "empty expression must compile to nil")
	excluded, err := f.Excludes(Entry{Path: ".hidden"})
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, !excluded, "nil filter excludes nothing")
	test.String(t, f.String(), "")
}

func Test_Filter_Compile_Errors(t *testing.T) {
	for _, expression := range []string{`name ==`, `unknownVar`, `name + "x"`} {
		t.Run(expression, func(t *testing.T) {
			_, err := Compile(expression)
			test.That(t, cmn.IsCode(err, "filter.compile"), "Compile(expression) | expect filter.compile error", err)
		})
	}
}
