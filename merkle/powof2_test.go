package merkle

import "testing"

func TestIsPow2(t *testing.T) {
	type args struct {
		size uint64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"16 is a power of two", args{16}, true},
		{"zero is not a power of two", args{0}, false},
		{"1 is a power of two", args{1}, true},
		{"17 is not a power of two (first bit is set, edge case)", args{17}, false},
		{"18 is not a power of two", args{18}, false},
		{"2^63 is a power of two", args{1 << 63}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPow2(tt.args.size); got != tt.want {
				t.Errorf("IsPow2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{6, 8},
		{8, 8},
		{9, 16},
		{17, 32},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.n); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
