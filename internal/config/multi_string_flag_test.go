package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiStringFlagAppendsOnSet(t *testing.T) {
	var concrete MultiStringFlag

	require.NoError(t, concrete.Set("foo"))
	require.NoError(t, concrete.Set("bar"))
	require.Error(t, concrete.Set(""), "setting an empty value should fail")

	require.Equal(t, MultiStringFlag{value: []string{"foo", "bar"}}, concrete)
	require.Equal(t, 2, concrete.Len())
}

func TestMultiStringFlagSplit(t *testing.T) {
	tests := []struct {
		name      string
		flag      *MultiStringFlag
		expected  []string
		stringVal string
	}{
		{
			name:      "empty_flag",
			flag:      &MultiStringFlag{},
			expected:  nil,
			stringVal: "",
		},
		{
			name: "single_value",
			flag: &MultiStringFlag{
				value: []string{"127.0.0.1:8080"},
			},
			expected:  []string{"127.0.0.1:8080"},
			stringVal: "127.0.0.1:8080",
		},
		{
			name: "multiple_values_with_separator",
			flag: &MultiStringFlag{
				value: []string{"127.0.0.1:8080,[::1]:8080", "127.0.0.1:9090"},
			},
			expected:  []string{"127.0.0.1:8080", "[::1]:8080", "127.0.0.1:9090"},
			stringVal: "127.0.0.1:8080,[::1]:8080,127.0.0.1:9090",
		},
		{
			name: "custom_separator",
			flag: &MultiStringFlag{
				value:     []string{"a;;b"},
				separator: ";;",
			},
			expected:  []string{"a", "b"},
			stringVal: "a;;b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.flag.Split())
			require.Equal(t, tc.stringVal, tc.flag.String())
		})
	}
}
