package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "button.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return File{Path: path}
}

func TestLookupBasic(t *testing.T) {
	f := writeConfig(t, "CLICK_1 /usr/local/bin/toggle.sh\n")

	entry, ok := f.Lookup("CLICK_1")
	if !ok {
		t.Fatal("expected CLICK_1 to be present")
	}
	if entry.Value != "/usr/local/bin/toggle.sh" {
		t.Errorf("value: got %q", entry.Value)
	}
	if entry.Args != "" {
		t.Errorf("args: got %q, want empty", entry.Args)
	}
}

func TestLookupAbsent(t *testing.T) {
	f := writeConfig(t, "CLICK_1 /bin/true\n")

	if _, ok := f.Lookup("CLICK_2"); ok {
		t.Error("expected CLICK_2 to be absent")
	}
}

func TestLookupTrailingArgsVerbatim(t *testing.T) {
	f := writeConfig(t, "HOLD_3S /bin/echo one two   three\n")

	entry, ok := f.Lookup("HOLD_3S")
	if !ok {
		t.Fatal("expected HOLD_3S to be present")
	}
	if entry.Value != "/bin/echo" {
		t.Errorf("value: got %q", entry.Value)
	}
	if entry.Args != "one two   three" {
		t.Errorf("args: got %q, want raw remainder", entry.Args)
	}
}

func TestLookupComments(t *testing.T) {
	f := writeConfig(t, strings.Join([]string{
		"# a comment line",
		"CLICK_1 /bin/one # trailing comment",
		"",
		"  \t ",
		"CLICK_2 /bin/two",
	}, "\n"))

	entry, ok := f.Lookup("CLICK_1")
	if !ok || entry.Value != "/bin/one" {
		t.Errorf("CLICK_1: got %+v ok=%v", entry, ok)
	}
	entry, ok = f.Lookup("CLICK_2")
	if !ok || entry.Value != "/bin/two" {
		t.Errorf("CLICK_2: got %+v ok=%v", entry, ok)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	f := writeConfig(t, "UP /bin/first\nUP /bin/second\n")

	entry, ok := f.Lookup("UP")
	if !ok || entry.Value != "/bin/first" {
		t.Errorf("expected first match, got %+v ok=%v", entry, ok)
	}
}

func TestLookupPresentButEmpty(t *testing.T) {
	// A bare key is a deliberate no-op: present, empty value.
	f := writeConfig(t, "CLICK_2\n")

	entry, ok := f.Lookup("CLICK_2")
	if !ok {
		t.Fatal("expected bare key to be present")
	}
	if entry.Value != "" || entry.Args != "" {
		t.Errorf("expected empty entry, got %+v", entry)
	}
}

func TestLookupTabSeparated(t *testing.T) {
	f := writeConfig(t, "DOWN\t\t/bin/down\targ1\n")

	entry, ok := f.Lookup("DOWN")
	if !ok || entry.Value != "/bin/down" || entry.Args != "arg1" {
		t.Errorf("got %+v ok=%v", entry, ok)
	}
}

func TestLookupLeadingWhitespace(t *testing.T) {
	f := writeConfig(t, "   UP /bin/up\n")

	entry, ok := f.Lookup("UP")
	if !ok || entry.Value != "/bin/up" {
		t.Errorf("got %+v ok=%v", entry, ok)
	}
}

func TestLookupOversizedValueSkipped(t *testing.T) {
	long := strings.Repeat("x", MaxValueLen)
	f := writeConfig(t, "CLICK_1 /"+long+"\nCLICK_1 /bin/fallback\n")

	// The oversized line is logged and skipped; the scan continues and
	// finds the next match.
	entry, ok := f.Lookup("CLICK_1")
	if !ok || entry.Value != "/bin/fallback" {
		t.Errorf("expected oversized line skipped, got %+v ok=%v", entry, ok)
	}
}

func TestLookupMissingFile(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "does-not-exist.conf")}

	if _, ok := f.Lookup("DOWN"); ok {
		t.Error("expected lookup against missing file to be absent")
	}
}

func TestLookupUint(t *testing.T) {
	f := writeConfig(t, strings.Join([]string{
		"CLICK_COUNT_LIMIT 3",
		"BAD_LIMIT notanumber",
		"EMPTY_LIMIT",
	}, "\n"))

	if got := f.LookupUint("CLICK_COUNT_LIMIT", 8); got != 3 {
		t.Errorf("CLICK_COUNT_LIMIT: got %d, want 3", got)
	}
	if got := f.LookupUint("BAD_LIMIT", 8); got != 8 {
		t.Errorf("BAD_LIMIT: got %d, want default 8", got)
	}
	if got := f.LookupUint("EMPTY_LIMIT", 8); got != 8 {
		t.Errorf("EMPTY_LIMIT: got %d, want default 8", got)
	}
	if got := f.LookupUint("ABSENT", 8); got != 8 {
		t.Errorf("ABSENT: got %d, want default 8", got)
	}
}

func TestLookupRereadsFile(t *testing.T) {
	// Edits take effect without restart: the store is read fresh on
	// every lookup.
	f := writeConfig(t, "CLICK_1 /bin/old\n")

	if entry, _ := f.Lookup("CLICK_1"); entry.Value != "/bin/old" {
		t.Fatalf("got %q before edit", entry.Value)
	}

	if err := os.WriteFile(f.Path, []byte("CLICK_1 /bin/new\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if entry, _ := f.Lookup("CLICK_1"); entry.Value != "/bin/new" {
		t.Errorf("got %q after edit, want /bin/new", entry.Value)
	}
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		line              string
		name, value, args string
	}{
		{"", "", "", ""},
		{"# comment", "", "", ""},
		{"NAME", "NAME", "", ""},
		{"NAME VALUE", "NAME", "VALUE", ""},
		{"NAME VALUE a b", "NAME", "VALUE", "a b"},
		{"NAME  \t VALUE", "NAME", "VALUE", ""},
		{"X", "", "", ""},   // too short to be an entry, silently ignored
		{" X ", "", "", ""}, // likewise after trimming
	}
	for _, c := range cases {
		name, value, args := parseLine(c.line)
		if name != c.name || value != c.value || args != c.args {
			t.Errorf("parseLine(%q) = (%q, %q, %q), want (%q, %q, %q)",
				c.line, name, value, args, c.name, c.value, c.args)
		}
	}
}

func TestLookupIgnoresStrayShortLines(t *testing.T) {
	// A lone character on a line is ignored without complaint, and the
	// scan continues to later entries.
	f := writeConfig(t, "x\nUP /bin/up\n")

	entry, ok := f.Lookup("UP")
	if !ok || entry.Value != "/bin/up" {
		t.Errorf("got %+v ok=%v", entry, ok)
	}
}
