package assets

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"solar", "twobody"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestBundledEnvironmentsAreJSON(t *testing.T) {
	for _, name := range Names() {
		data, err := Read(name)
		if err != nil {
			t.Fatalf("Read(%q): %v", name, err)
		}
		if !json.Valid(data) {
			t.Errorf("%s.json is not valid JSON", name)
		}
	}
	if _, err := Read("missing"); err == nil {
		t.Error("Read(missing) succeeded")
	}
}
