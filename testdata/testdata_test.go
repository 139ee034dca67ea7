package testdata

import "testing"

func TestListFiles(t *testing.T) {
	files, err := ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("ListFiles returned no files")
	}
}

func TestListValidFiles(t *testing.T) {
	files, err := ListValidFiles()
	if err != nil {
		t.Fatalf("ListValidFiles: %v", err)
	}
	want := map[string]bool{FilePO850: true, FileFA997: true}
	for _, f := range files {
		delete(want, f)
	}
	if len(want) != 0 {
		t.Errorf("ListValidFiles missing: %v", want)
	}
}

func TestListMalformedFiles(t *testing.T) {
	files, err := ListMalformedFiles()
	if err != nil {
		t.Fatalf("ListMalformedFiles: %v", err)
	}
	if len(files) != 4 {
		t.Errorf("len(files) = %d, want 4", len(files))
	}
}

func TestMustLoad(t *testing.T) {
	data := MustLoad(FilePO850)
	if len(data) == 0 {
		t.Error("MustLoad(FilePO850) returned no data")
	}
}

func TestMustLoad_PanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoad on a missing file should panic")
		}
	}()
	MustLoad("does-not-exist.x12")
}

func TestLoaders(t *testing.T) {
	loaders := []struct {
		name string
		fn   func() ([]byte, error)
	}{
		{"LoadPO850", LoadPO850},
		{"LoadFA997", LoadFA997},
		{"LoadMissingBEG", LoadMissingBEG},
		{"LoadTruncatedISA", LoadTruncatedISA},
		{"LoadInvalidNumeric", LoadInvalidNumeric},
		{"LoadRepeatOverflow", LoadRepeatOverflow},
	}
	for _, l := range loaders {
		t.Run(l.name, func(t *testing.T) {
			data, err := l.fn()
			if err != nil {
				t.Fatalf("%s: %v", l.name, err)
			}
			if len(data) == 0 {
				t.Errorf("%s returned no data", l.name)
			}
		})
	}
}
