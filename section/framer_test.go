package section

import "testing"

// phFixture is the 48-byte Private Header test fixture: 8-byte header
// plus 40-byte payload.
var phFixture = []byte{
	// Header
	0x50, 0x48, 0x00, 0x30, 0x01, 0x00, 0x0a, 0x00,
	// Payload
	0x00, 0x00, 0x00, 0x0a, 0x4d, 0x71, 0xe9, 0x74,
	0x00, 0x00, 0x00, 0x0a, 0x4f, 0x68, 0x0d, 0x96,
	0x42, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x90, 0x00, 0x00, 0x47, 0x90, 0x00, 0x00, 0x47,
}

var uhFixture = []byte{
	0x55, 0x48, 0x00, 0x18, 0x01, 0x00, 0x09, 0x00,
	0x20, 0x03, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

var psFixture = []byte{
	0x50, 0x53, 0x00, 0x50, 0x01, 0x01, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x09, 0x04, 0x06, 0x00, 0x48,
	0x00, 0x00, 0x00, 0xe0, 0x00, 0x00, 0x08, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00,
	0xff, 0xff, 0xff, 0xe2, 0x80, 0x00, 0x00, 0x80,
	0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x16, 0x5a,
	0x42, 0x43, 0x38, 0x31, 0x30, 0x34, 0x30, 0x36,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
}

func TestFramePH(t *testing.T) {
	s, err := Frame(phFixture)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if s.Name() != "Private header" {
		t.Errorf("Name() = %q", s.Name())
	}
	ph := s.(*PH)
	if ph.Data().SectionCount != 0x10 {
		t.Errorf("SectionCount = 0x%02x", ph.Data().SectionCount)
	}
	if ph.Data().PlatformID != 0x90000047 {
		t.Errorf("PlatformID = 0x%08x", ph.Data().PlatformID)
	}
}

func TestHeaderParamsOrderAndCount(t *testing.T) {
	s, err := Frame(phFixture)
	if err != nil {
		t.Fatal(err)
	}
	hp := s.HeaderParams()
	if len(hp) != 5 {
		t.Fatalf("expected 5 header params, got %d", len(hp))
	}
	wantNames := []string{"Section ID", "Section length", "Section version", "Section subtype", "Section component"}
	for i, name := range wantNames {
		if hp[i].Name() != name {
			t.Errorf("param %d name = %q, want %q", i, hp[i].Name(), name)
		}
	}
	if hp[0].Value() != "0x5048 (PH)" {
		t.Errorf("Section ID = %q", hp[0].Value())
	}
}

func TestFrameUH(t *testing.T) {
	s, err := Frame(uhFixture)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if s.Name() != "User Header" {
		t.Errorf("Name() = %q", s.Name())
	}
	found := map[string]string{}
	for _, p := range s.PayloadParams() {
		found[p.Name()] = p.Value()
	}
	if found["Event severity"] != "Unrecoverable Error" {
		t.Errorf("Event severity = %q", found["Event severity"])
	}
	if found["Event scope"] != "Single platform" {
		t.Errorf("Event scope = %q", found["Event scope"])
	}
	if found["Subsystem"] != "Memory subsystem" {
		t.Errorf("Subsystem = %q", found["Subsystem"])
	}
}

func TestUHUnknownSubsystem(t *testing.T) {
	data := append([]byte(nil), uhFixture...)
	data[8] = 0x42 // subsystemId
	s, err := Frame(data)
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]string{}
	for _, p := range s.PayloadParams() {
		found[p.Name()] = p.Value()
	}
	if found["Subsystem"] != "Unknown (0x42)" {
		t.Errorf("Subsystem = %q", found["Subsystem"])
	}
}

func TestFramePS(t *testing.T) {
	s, err := Frame(psFixture)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if s.Name() != "Primary System Reference Code" {
		t.Errorf("Name() = %q", s.Name())
	}
	found := map[string]string{}
	for _, p := range s.PayloadParams() {
		found[p.Name()] = p.Value()
	}
	if found["Reference code"] != "0xbc810406" {
		t.Errorf("Reference code = %q", found["Reference code"])
	}
	if found["Words 2-5"] != "000000e0 00000800 00000000 00200000" {
		t.Errorf("Words 2-5 = %q", found["Words 2-5"])
	}
	if found["Words 6-9"] != "ffffffe2 80000080 00000000 0201165a" {
		t.Errorf("Words 6-9 = %q", found["Words 6-9"])
	}
}

func TestFrameUDFallsBackToHexDump(t *testing.T) {
	data := []byte{
		0x55, 0x44, 0x00, 0x0c, 0x01, 0x00, 0xff, 0xff, // header, component 0xffff (no plugin)
		0xde, 0xad, 0xbe, 0xef,
	}
	s, err := Frame(data)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	pp := s.PayloadParams()
	if len(pp) != 1 || pp[0].Kind().String() != "Raw" {
		t.Fatalf("expected a single Raw param, got %+v", pp)
	}
}

func TestFrameGenericSection(t *testing.T) {
	data := []byte{
		0x58, 0x58, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0xaa,
	}
	s, err := Frame(data)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if s.Name() != "General data (unknown section type)" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestFrameHeaderTooSmall(t *testing.T) {
	if _, err := Frame(make([]byte, HeaderSize)); err == nil {
		t.Fatal("expected error for buffer exactly header size")
	}
}

func TestFrameLengthTooSmall(t *testing.T) {
	data := []byte{0x50, 0x48, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0xaa}
	if _, err := Frame(data); err == nil {
		t.Fatal("expected error: length == sizeof(header)")
	}
}

func TestFrameLengthExceedsBuffer(t *testing.T) {
	data := []byte{0x50, 0x48, 0x00, 0x64, 0x00, 0x00, 0x00, 0x00, 0xaa}
	if _, err := Frame(data); err == nil {
		t.Fatal("expected error: length > buffer")
	}
}

func TestFramePHPayloadSizeMismatch(t *testing.T) {
	data := []byte{0x50, 0x48, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0xaa}
	if _, err := Frame(data); err == nil {
		t.Fatal("expected payload-size mismatch error")
	}
}

func TestPayloadIsOwnCopy(t *testing.T) {
	data := append([]byte(nil), phFixture...)
	s, err := Frame(data)
	if err != nil {
		t.Fatal(err)
	}
	orig := append([]byte(nil), s.Payload()...)
	data[10] = 0xff // mutate source buffer after framing
	if s.Payload()[2] != orig[2] {
		t.Error("section payload should not alias the input buffer")
	}
}

func TestRoundTripHeaderAndPayloadBytesEqual(t *testing.T) {
	s, err := Frame(phFixture)
	if err != nil {
		t.Fatal(err)
	}
	h := s.Header()
	rebuilt := make([]byte, HeaderSize+len(s.Payload()))
	rebuilt[0] = byte(h.ID >> 8)
	rebuilt[1] = byte(h.ID)
	rebuilt[2] = byte(h.Length >> 8)
	rebuilt[3] = byte(h.Length)
	rebuilt[4] = h.Version
	rebuilt[5] = h.Subtype
	rebuilt[6] = byte(h.Component >> 8)
	rebuilt[7] = byte(h.Component)
	copy(rebuilt[HeaderSize:], s.Payload())

	s2, err := Frame(rebuilt)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if s2.Header() != s.Header() {
		t.Errorf("header mismatch: %+v vs %+v", s2.Header(), s.Header())
	}
	p1, p2 := s.Payload(), s2.Payload()
	if len(p1) != len(p2) {
		t.Fatalf("payload length mismatch: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("payload byte %d mismatch: %x vs %x", i, p1[i], p2[i])
		}
	}
}
