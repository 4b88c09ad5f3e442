package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal string
	}{
		{name: "nil slice", s: nil, wantVal: "[]"},
		{name: "empty slice", s: StringSlice{}, wantVal: "[]"},
		{name: "ordered ids", s: StringSlice{"db001", "cs002", "al010"}, wantVal: `["db001","cs002","al010"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "nil", input: nil, want: StringSlice{}},
		{name: "empty string", input: "", want: StringSlice{}},
		{name: "json null", input: "null", want: StringSlice{}},
		{name: "string", input: `["a","b"]`, want: StringSlice{"a", "b"}},
		{name: "bytes", input: []byte(`["x"]`), want: StringSlice{"x"}},
		{name: "invalid json", input: "a|||b", wantErr: true},
		{name: "unsupported type", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}
