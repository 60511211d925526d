package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hatchery/internal/adapters/detector"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestDetectEnvironment_RegularFileIsPlain(t *testing.T) {
	t.Setenv("CI", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
}

func TestDetectEnvironment_NilIsPlain(t *testing.T) {
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(nil))
}

func TestDetectEnvironment_CIForcesPlain(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(os.Stderr))
}
