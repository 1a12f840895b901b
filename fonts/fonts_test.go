package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize("test", goregular.TTF, 14); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if face := FontName("test").Get(); face == nil {
		t.Fatal("Get() = nil, want a face")
	}
}

func TestLoadFontWithSizeBadData(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 14); err == nil {
		t.Fatal("LoadFontWithSize accepted invalid font data")
	}
	if _, ok := fonts["broken"]; ok {
		t.Error("invalid font was registered")
	}
}

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(34, 16, 12, 13); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Title, Bold, Body, Small, Button} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestGetMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() on an unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
