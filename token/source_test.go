package token

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"unicode/utf16"
)

func TestSourcePeekNext(t *testing.T) {
	src := NewSource(strings.NewReader("a = 1\r\n  b = 2 \n\nitem []:"))
	l, ok := src.Peek()
	if !ok || l.Text != "a = 1" {
		t.Fatalf("peek: got %q %v", l.Text, ok)
	}
	l2, _ := src.Peek()
	if l2 != l {
		t.Errorf("second peek differs: %+v vs %+v", l2, l)
	}
	src.Next()
	l, _ = src.Next()
	if l.Text != "b = 2" || l.Raw != "  b = 2 " || l.Pos.Line != 2 {
		t.Errorf("got %+v", l)
	}
	l, _ = src.Next()
	if l.Text != "" || l.Pos.Line != 3 {
		t.Errorf("got %+v", l)
	}
	l, _ = src.Next()
	if !l.HasPrefix("frames", "item") {
		t.Errorf("expected item prefix, got %q", l.Text)
	}
	if _, ok := src.Next(); ok {
		t.Error("expected end of input")
	}
	if src.Err() != nil {
		t.Error(src.Err())
	}
}

func TestSourceUTF16(t *testing.T) {
	text := "name = \"naïve\"\nx = 1\n"
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		buf := bytes.NewBuffer(nil)
		if order == binary.LittleEndian {
			buf.Write([]byte{0xFF, 0xFE})
		} else {
			buf.Write([]byte{0xFE, 0xFF})
		}
		for _, u := range utf16.Encode([]rune(text)) {
			binary.Write(buf, order, u)
		}
		src := NewSource(buf)
		l, ok := src.Next()
		if !ok || l.Text != `name = "naïve"` {
			t.Errorf("%v: got %q", order, l.Text)
		}
	}
}

func TestSourceUTF8BOM(t *testing.T) {
	src := NewSource(strings.NewReader("\xEF\xBB\xBFFile type = \"ooTextFile\"\n"))
	l, _ := src.Next()
	if !l.HasPrefix("File type") {
		t.Errorf("BOM not stripped: %q", l.Text)
	}
}

func TestSourceUTF16OddByte(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xFF, 0xFE})
	for _, u := range utf16.Encode([]rune("x = 1\ny")) {
		binary.Write(buf, binary.LittleEndian, u)
	}
	buf.WriteByte('z')
	src := NewSource(buf)
	src.Next()
	l, ok := src.Next()
	if !ok || !strings.HasPrefix(l.Text, "y") || !strings.Contains(l.Text, "\uFFFD") {
		t.Errorf("got %q", l.Text)
	}
	if src.Err() != nil {
		t.Error(src.Err())
	}
}
