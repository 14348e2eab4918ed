package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinRecord(record, headers []string) (string, error) {
	return strings.Join(headers, "|") + "=" + strings.Join(record, "|"), nil
}

func TestParseCSV_WithHeader(t *testing.T) {
	var got []string
	for result := range ParseCSV(strings.NewReader("a,b\n1,2\n3,4\n"), true, joinRecord) {
		require.NoError(t, result.Error)
		got = append(got, result.Value)
	}

	assert.Equal(t, []string{"a|b=1|2", "a|b=3|4"}, got)
}

func TestParseCSV_WithoutHeader(t *testing.T) {
	var got []string
	for result := range ParseCSV(strings.NewReader("1,2\n3\n"), false, joinRecord) {
		require.NoError(t, result.Error)
		got = append(got, result.Value)
	}

	assert.Equal(t, []string{"=1|2", "=3"}, got)
}

func TestParseCSV_ReportsLineNumbers(t *testing.T) {
	var lines []int
	for result := range ParseCSV(strings.NewReader("h\nx\ny\n"), true, joinRecord) {
		lines = append(lines, result.Line)
	}

	assert.Equal(t, []int{2, 3}, lines)
}

func TestParseCSV_StopsEarly(t *testing.T) {
	count := 0
	for range ParseCSV(strings.NewReader("1\n2\n3\n"), false, joinRecord) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}
