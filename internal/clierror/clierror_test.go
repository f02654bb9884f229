package clierror

import "testing"

func TestNewRecoversOffsetAtIndex(t *testing.T) {
	e := New("Unexpected character '@' at index 4", "1 + @")
	if e.Offset != 4 {
		t.Errorf("Offset = %d, want 4", e.Offset)
	}
}

func TestNewRecoversOffsetAt(t *testing.T) {
	e := New("Missing Comma at 7", "sum([0,0] [1,1])")
	if e.Offset != 7 {
		t.Errorf("Offset = %d, want 7", e.Offset)
	}
}

func TestNewWithNoRecoverableOffset(t *testing.T) {
	e := New("empty range", "sum([9,9], [9,9])")
	if e.Offset != -1 {
		t.Errorf("Offset = %d, want -1", e.Offset)
	}
}

func TestFormatPlacesCaretAtOffset(t *testing.T) {
	e := New("Unexpected character '@' at index 4", "1 + @")
	got := e.Format(false)
	want := "=1 + @\n     ^\nUnexpected character '@' at index 4"
	if got != want {
		t.Errorf("Format(false) =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatOmitsCaretWhenOffsetUnknown(t *testing.T) {
	e := New("empty range", "sum([9,9], [9,9])")
	got := e.Format(false)
	want := "=sum([9,9], [9,9])\nempty range"
	if got != want {
		t.Errorf("Format(false) =\n%q\nwant\n%q", got, want)
	}
}

func TestErrorMatchesFormatFalse(t *testing.T) {
	e := New("Missing Comma at 7", "sum([0,0] [1,1])")
	if e.Error() != e.Format(false) {
		t.Error("Error() should equal Format(false)")
	}
}
