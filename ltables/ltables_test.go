package ltables

import "testing"

func TestGetKnownKey(t *testing.T) {
	if got := SubsystemName.Get(0x20); got != "Memory subsystem" {
		t.Errorf("got %q", got)
	}
	if got := EventSeverity.Get(0x40); got != "Unrecoverable Error" {
		t.Errorf("got %q", got)
	}
	if got := EventScope.Get(0x03); got != "Single platform" {
		t.Errorf("got %q", got)
	}
}

func TestGetUnknownKeyFallback(t *testing.T) {
	got := SubsystemName.Get(0x42)
	want := "Unknown (0x42)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDuplicateKeysLastWriteWins(t *testing.T) {
	// 0x57 and 0x7e each appear twice upstream; the table keeps the
	// second occurrence.
	if got := SubsystemName.Get(0x57); got != "CEC hardware - CEC chip interface (JTAG, FSI, etc.)" {
		t.Errorf("got %q", got)
	}
	if got := SubsystemName.Get(0x7e); got != "Connection Monitoring - Hypervisor lost communication with BPA" {
		t.Errorf("got %q", got)
	}
}

func TestFallbackAlwaysHasHexKey(t *testing.T) {
	for _, tbl := range []Table{SubsystemName, EventSeverity, EventScope, EventType, CreatorSubSys} {
		got := tbl.Get(0xfe)
		if got == "" {
			t.Error("expected non-empty fallback")
		}
	}
}
