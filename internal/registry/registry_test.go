package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("reg_test_a", SourceBuiltin, func() (level.Level, error) {
		return level.Level{ID: "reg_test_a", Name: "Alpha", Width: 10, Height: 10}, nil
	})

	if !Exists("reg_test_a") {
		t.Fatal("Exists() = false after Register")
	}

	l, err := Create("reg_test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if l.Name != "Alpha" {
		t.Errorf("Create().Name = %q, expected Alpha", l.Name)
	}

	found := false
	for _, info := range List() {
		if info.ID == "reg_test_a" {
			found = true
			if info.Title != "Alpha" || info.Source != SourceBuiltin {
				t.Errorf("List() entry = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() (level.Level, error) { return level.Level{ID: "reg_test_dup"}, nil }
	Register("reg_test_dup", SourceBuiltin, f)

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register("reg_test_dup", SourceBuiltin, f)
}

func TestRegisterLevelClones(t *testing.T) {
	l := level.Level{ID: "reg_test_clone", Name: "Clone", Keys: []level.Rect{level.R("k", 1, 1, 2, 2)}}
	if err := RegisterLevel(l, SourceFile); err != nil {
		t.Fatalf("RegisterLevel() failed: %v", err)
	}
	if err := RegisterLevel(l, SourceFile); err == nil {
		t.Error("RegisterLevel() should reject a duplicate ID")
	}

	a, _ := Create("reg_test_clone")
	a.Keys[0].Name = "mutated"
	b, _ := Create("reg_test_clone")
	if b.Keys[0].Name != "k" {
		t.Error("Create() should hand out independent copies")
	}
}

func TestCreateUnknownAndFailing(t *testing.T) {
	if _, err := Create("reg_test_missing"); err == nil {
		t.Error("Create() of an unknown level should fail")
	}

	boom := errors.New("boom")
	Register("reg_test_fail", SourceFile, func() (level.Level, error) { return level.Level{}, boom })
	if _, err := Create("reg_test_fail"); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap factory error", err)
	}
}
