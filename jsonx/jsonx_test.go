package jsonx_test

import (
	"math"
	"testing"

	"cssb/jsonx"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"int slice", []int{1, 2, 3}, "[1,2,3]"},
		{"string", "hi", `"hi"`},
		{"nil", nil, "null"},
		{
			"struct keys in declaration order",
			struct {
				Height float64 `json:"height"`
				Width  float64 `json:"width"`
			}{10, 20},
			`{"height":10,"width":20}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonx.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Marshal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	if _, err := jsonx.Marshal(math.Inf(1)); err == nil {
		t.Error("Marshal(+Inf) succeeded, want error")
	}
}

type circle struct {
	Radius float64 `json:"radius"`
}

func (c circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func TestUnmarshal_ProtoMethodsSurvive(t *testing.T) {
	got, err := jsonx.Unmarshal(circle{}, `{"radius":10}`)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if got.Radius != 10 {
		t.Errorf("Radius = %v, want 10", got.Radius)
	}
	if want := math.Pi * 100; got.Area() != want {
		t.Errorf("Area() = %v, want %v", got.Area(), want)
	}
}

func TestUnmarshal_ProtoDefaultsKept(t *testing.T) {
	proto := circle{Radius: 7}
	got, err := jsonx.Unmarshal(proto, `{}`)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if got.Radius != 7 {
		t.Errorf("Radius = %v, want proto default 7", got.Radius)
	}
}

func TestUnmarshal_InvalidJSON(t *testing.T) {
	if _, err := jsonx.Unmarshal(circle{}, `{"radius":`); err == nil {
		t.Error("Unmarshal() succeeded on truncated input, want error")
	}
}

func TestRemarshal(t *testing.T) {
	src := map[string]any{"radius": 2.5}
	got, err := jsonx.Remarshal(circle{}, src)
	if err != nil {
		t.Fatalf("Remarshal() failed: %v", err)
	}
	if got.Radius != 2.5 {
		t.Errorf("Radius = %v, want 2.5", got.Radius)
	}
}
