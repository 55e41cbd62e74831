package registry

import (
	"reflect"
	"testing"
)

func TestDefaultGeneratorRegistry(t *testing.T) {
	r := DefaultGeneratorRegistry()

	want := []string{Choice, DateSequence, UniformInt}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for _, name := range want {
		if _, err := r.Get(name); err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
	}

	if _, err := r.Get("faker_name"); err == nil {
		t.Fatal("expected unknown generator error")
	}
}
