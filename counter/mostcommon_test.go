package counter

import (
	"reflect"
	"testing"
)

func TestMostCommon(t *testing.T) {
	tests := []struct {
		name string
		ctr  Counter[string, int]
		want []Entry[string, int]
	}{
		{
			name: "empty",
			want: []Entry[string, int]{},
		},
		{
			name: "descending",
			ctr:  Init([]string{"a", "b", "a", "c", "a", "b"}),
			want: []Entry[string, int]{
				{Element: "a", Count: 3},
				{Element: "b", Count: 2},
				{Element: "c", Count: 1},
			},
		},
		{
			name: "ties in element order",
			ctr:  Init([]string{"d", "c", "c", "b", "a", "a"}),
			want: []Entry[string, int]{
				{Element: "a", Count: 2},
				{Element: "c", Count: 2},
				{Element: "b", Count: 1},
				{Element: "d", Count: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostCommon(tt.ctr); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostCommon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMostCommon_DoesNotMutate(t *testing.T) {
	ctr := Init([]byte("abracadabra"))
	before := ctr.Clone()

	MostCommon(ctr)

	if !reflect.DeepEqual(before, ctr) {
		t.Errorf("counter changed: %v, want %v", ctr, before)
	}
}
