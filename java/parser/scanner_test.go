package parser

import "testing"

func TestScannerPrimeThePump(t *testing.T) {
	s := NewScanner("t.java", []byte("class Foo {}"))
	s.Advance() // prime the pump, as every caller must
	if s.Current().Kind != CLASS {
		t.Fatalf("Current() = %v, want CLASS", s.Current().Kind)
	}
}

func TestScannerAdvanceStopsAtEOF(t *testing.T) {
	s := NewScanner("t.java", []byte("class"))
	s.Advance()
	if s.Current().Kind != CLASS {
		t.Fatalf("Current() = %v, want CLASS", s.Current().Kind)
	}
	s.Advance()
	if s.Current().Kind != EOF {
		t.Fatalf("Current() = %v, want EOF", s.Current().Kind)
	}
	s.Advance()
	if s.Current().Kind != EOF {
		t.Fatalf("Advance past EOF moved off EOF: %v", s.Current().Kind)
	}
}

func TestScannerPreviousBeforeAnyAdvance(t *testing.T) {
	s := NewScanner("t.java", []byte("class Foo"))
	if s.Previous().Kind != CLASS {
		t.Fatalf("Previous() before priming = %v, want CLASS", s.Previous().Kind)
	}
}

func TestScannerBookmarkRoundTrip(t *testing.T) {
	s := NewScanner("t.java", []byte("a b c"))
	s.Advance()
	s.RecordPosition()
	s.Advance()
	s.Advance()
	if s.Current().Kind != EOF {
		t.Fatalf("Current() = %v, want EOF", s.Current().Kind)
	}
	s.ReturnToPosition()
	if s.Current().Image != "a" {
		t.Fatalf("after ReturnToPosition, Current().Image = %q, want %q", s.Current().Image, "a")
	}
}

func TestScannerNestedBookmarks(t *testing.T) {
	s := NewScanner("t.java", []byte("a b c d"))
	s.Advance()
	s.RecordPosition() // at "a"
	s.Advance()
	s.RecordPosition() // at "b"
	s.Advance()
	if s.Current().Image != "c" {
		t.Fatalf("Current().Image = %q, want %q", s.Current().Image, "c")
	}
	s.ReturnToPosition() // back to "b"
	if s.Current().Image != "b" {
		t.Fatalf("Current().Image = %q, want %q", s.Current().Image, "b")
	}
	s.ReturnToPosition() // back to "a"
	if s.Current().Image != "a" {
		t.Fatalf("Current().Image = %q, want %q", s.Current().Image, "a")
	}
}

func TestScannerFileName(t *testing.T) {
	s := NewScanner("Main.java", []byte(""))
	if s.FileName() != "Main.java" {
		t.Fatalf("FileName() = %q, want %q", s.FileName(), "Main.java")
	}
}
