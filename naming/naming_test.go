package naming

import (
	"strings"
	"testing"

	"github.com/syntax-framework/statics/cmn"
	"github.com/tdewolff/test"
)

func Test_Identifier(t *testing.T) {
	var tests = []struct {
		name     string
		expected string
	}{
		{"root.css", "root_css"},
		{"script.js", "script_js"},
		{"jquery-ui.min.js", "jquery_ui_min_js"},
		{"_private.svg", "_private_svg"},
		{"vendor", "vendor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifier, err := Identifier(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			test.String(t, identifier, tt.expected, "Identifier(name) | invalid output")
		})
	}
}

func Test_Identifier_Invalid(t *testing.T) {
	for _, name := range []string{"3rdparty", "icon@2x.png", "fonts and icons", "", "\xff.css"} {
		t.Run(name, func(t *testing.T) {
			if _, err := Identifier(name); err == nil {
				t.Errorf("Identifier(%q) | expect to receive error", name)
			}
		})
	}
	_, err := Identifier("\xff.css")
	test.That(t, cmn.IsCode(err, "naming.utf8"), "utf8 error code")
	_, err = Identifier("1.css")
	test.That(t, cmn.IsCode(err, "naming.invalid"), "invalid error code")
}

func Test_Segments_End_With_ScopeName(t *testing.T) {
	segments := Segments("vendor/jquery-ui/v1.2")
	test.String(t, strings.Join(segments, "|"), "vendor|jquery_ui|v1_2")

	name, err := ScopeName("vendor/jquery-ui/v1.2")
	test.Error(t, err)
	test.String(t, segments[len(segments)-1], name)
}

func Test_Segments_And_Qualify(t *testing.T) {
	segments := Segments("vendor/jquery-ui/")
	test.String(t, strings.Join(segments, "|"), "vendor|jquery_ui")
	test.That(t, len(Segments("")) == 0, "empty path has no segments")
	test.That(t, len(Segments(".")) == 0, "dot path has no segments")

	test.String(t, Qualify(segments, "ui_js"), "vendor::jquery_ui::ui_js")
	test.String(t, Qualify([]string{"", "vendor", ""}, "script_js"), "vendor::script_js")
	test.String(t, Qualify(nil, "root_css"), "root_css")
}

func Test_ScopeName(t *testing.T) {
	name, err := ScopeName("vendor/jquery-ui")
	if err != nil {
		t.Fatal(err)
	}
	test.String(t, name, "jquery_ui")
}

func Test_Split(t *testing.T) {
	var tests = []struct {
		name      string
		stem      string
		extension string
	}{
		{"root.css", "root", "css"},
		{"app.min.js", "app.min", "js"},
		{".hidden.css", ".hidden", "css"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, extension, err := Split(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			test.String(t, stem, tt.stem)
			test.String(t, extension, tt.extension)
		})
	}

	for _, name := range []string{"LICENSE", ".env", "trailing.", ""} {
		t.Run("invalid "+name, func(t *testing.T) {
			_, _, err := Split(name)
			test.That(t, cmn.IsCode(err, "naming.extension"), "Split(name) | expect naming.extension error")
		})
	}
}

func Test_Valid(t *testing.T) {
	test.That(t, Valid("a_1"), "a_1")
	test.That(t, Valid("_"), "_")
	test.That(t, !Valid("1a"), "1a")
	test.That(t, !Valid("a b"), "a b")
	test.That(t, !Valid("ção"), "non ascii")
}
