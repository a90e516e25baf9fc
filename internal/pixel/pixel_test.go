package pixel

import "testing"

func TestFormat_IsColor(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{RGB16, true},
		{RGBA16, true},
		{RGB32, true},
		{RGBA32, true},
		{D16, false},
		{D32, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.IsColor(); got != tt.expected {
				t.Errorf("IsColor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_DepthRange(t *testing.T) {
	tests := []struct {
		format   Format
		expected int64
	}{
		{D16, 0xFFFF},
		{D32, 0xFFFFFFFF},
		{RGB16, 0},
		{RGBA32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.DepthRange(); got != tt.expected {
				t.Errorf("DepthRange() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestPack16_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint16
	}{
		{"black", 0, 0, 0, 0},
		{"white", 31, 31, 31, 1},
		{"red", 31, 0, 0, 1},
		{"mixed", 17, 5, 29, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pack16(tt.r, tt.g, tt.b, tt.a)
			if R16(p) != tt.r || G16(p) != tt.g || B16(p) != tt.b || A16(p) != tt.a {
				t.Errorf("unpack = (%d %d %d %d), want (%d %d %d %d)",
					R16(p), G16(p), B16(p), A16(p), tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestPack32_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint32
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"green", 0, 255, 0, 255},
		{"mixed", 12, 200, 99, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pack32(tt.r, tt.g, tt.b, tt.a)
			if R32(p) != tt.r || G32(p) != tt.g || B32(p) != tt.b || A32(p) != tt.a {
				t.Errorf("unpack = (%d %d %d %d), want (%d %d %d %d)",
					R32(p), G32(p), B32(p), A32(p), tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestPackColor16_AlphaBit(t *testing.T) {
	if got := A16(PackColor16(1, 1, 1, 0)); got != 0 {
		t.Errorf("alpha bit = %d, want 0", got)
	}
	if got := A16(PackColor16(1, 1, 1, 0.25)); got != 1 {
		t.Errorf("alpha bit = %d, want 1", got)
	}
}

func TestPlot16_BlendSkipsZeroAlpha(t *testing.T) {
	dst := []uint16{Pack16(31, 0, 0, 1)}

	Plot16(dst, 0, 0, 1, 0, 0, true)
	if dst[0] != Pack16(31, 0, 0, 1) {
		t.Errorf("zero-alpha blend wrote %#x", dst[0])
	}

	Plot16(dst, 0, 0, 1, 0, 0.5, true)
	if dst[0] != Pack16(0, 31, 0, 1) {
		t.Errorf("blend wrote %#x, want %#x", dst[0], Pack16(0, 31, 0, 1))
	}
}

func TestPlot32_BlendComposites(t *testing.T) {
	dst := []uint32{Pack32(200, 0, 0, 255)}

	// half red over full red: rgb composites, alpha saturates
	Plot32(dst, 0, 0, 1, 0, 0.5, true)
	p := dst[0]
	if R32(p) != 100 {
		t.Errorf("R = %d, want 100", R32(p))
	}
	if G32(p) != 127 {
		t.Errorf("G = %d, want 127", G32(p))
	}
	if A32(p) != 255 {
		t.Errorf("A = %d, want 255", A32(p))
	}
}

func TestPlot32_NoBlendOverwrites(t *testing.T) {
	dst := []uint32{Pack32(200, 200, 200, 255)}
	Plot32(dst, 0, 0, 0, 1, 0.5, false)
	if dst[0] != Pack32(0, 0, 255, 127) {
		t.Errorf("wrote %#x, want %#x", dst[0], Pack32(0, 0, 255, 127))
	}
}

func TestTexel16(t *testing.T) {
	r, g, b, a := Texel16(Pack16(31, 0, 15, 0), true)
	if r != 1 || g != 0 || a != 0 {
		t.Errorf("got (%v %v %v %v)", r, g, b, a)
	}
	if b < 0.48 || b > 0.49 {
		t.Errorf("B = %v, want ~15/31", b)
	}

	_, _, _, a = Texel16(Pack16(31, 0, 15, 0), false)
	if a != 1 {
		t.Errorf("alpha without coverage bit = %v, want 1", a)
	}
}

func TestTexel32(t *testing.T) {
	r, g, b, a := Texel32(Pack32(255, 0, 51, 127), true)
	if r != 1 || g != 0 {
		t.Errorf("got (%v %v %v %v)", r, g, b, a)
	}
	if b != 51.0/255.0 {
		t.Errorf("B = %v, want 51/255", b)
	}
	if a != 127.0/255.0 {
		t.Errorf("A = %v, want 127/255", a)
	}
}
