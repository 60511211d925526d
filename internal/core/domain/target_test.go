package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hatchery/internal/core/domain"
)

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		name          string
		requested     []string
		hooksOnly     bool
		ext           bool
		wantTargets   []domain.Target
		wantHooksOnly bool
	}{
		{
			name:          "ext overrides explicit targets",
			requested:     []string{"sdist", "custom"},
			ext:           true,
			wantTargets:   []domain.Target{"wheel"},
			wantHooksOnly: true,
		},
		{
			name:          "ext forces hooks only",
			ext:           true,
			wantTargets:   []domain.Target{"wheel"},
			wantHooksOnly: true,
		},
		{
			name:        "defaults to sdist then wheel",
			wantTargets: []domain.Target{"sdist", "wheel"},
		},
		{
			name:          "defaults keep hooks only",
			hooksOnly:     true,
			wantTargets:   []domain.Target{"sdist", "wheel"},
			wantHooksOnly: true,
		},
		{
			name:        "explicit order and duplicates preserved",
			requested:   []string{"wheel", "sdist", "wheel:standard", "wheel"},
			wantTargets: []domain.Target{"wheel", "sdist", "wheel:standard", "wheel"},
		},
		{
			name:        "blank specifiers dropped",
			requested:   []string{" ", "wheel", ""},
			wantTargets: []domain.Target{"wheel"},
		},
		{
			name:        "only blank specifiers fall back to defaults",
			requested:   []string{""},
			wantTargets: []domain.Target{"sdist", "wheel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, hooksOnly := domain.ResolveTargets(tt.requested, tt.hooksOnly, tt.ext)
			assert.Equal(t, tt.wantTargets, targets)
			assert.Equal(t, tt.wantHooksOnly, hooksOnly)
		})
	}
}

func TestTarget_NameAndQualifier(t *testing.T) {
	tests := []struct {
		target        domain.Target
		wantName      string
		wantQualifier string
	}{
		{target: "wheel", wantName: "wheel"},
		{target: "wheel:standard", wantName: "wheel", wantQualifier: "standard"},
		{target: "custom:a:b", wantName: "custom", wantQualifier: "a:b"},
		{target: ":odd", wantName: "", wantQualifier: "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.target.Name())
			assert.Equal(t, tt.wantQualifier, tt.target.Qualifier())
		})
	}
}
