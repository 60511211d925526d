package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hatchery/internal/core/domain"
)

func TestRouteBackend(t *testing.T) {
	assert.Equal(t, domain.BackendNative, domain.RouteBackend("hatchling.build"))

	for _, declared := range []string{"", "setuptools.build_meta", "hatchling.build ", "Hatchling.Build", "hatchling"} {
		assert.Equal(t, domain.BackendForeign, domain.RouteBackend(declared), "declared %q", declared)
	}
}

func TestDelegationScript(t *testing.T) {
	tests := []struct {
		name    string
		targets []domain.Target
		want    string
	}{
		{name: "sdist only", targets: []domain.Target{"sdist"}, want: "build-sdist"},
		{name: "wheel only", targets: []domain.Target{"wheel"}, want: "build-wheel"},
		{name: "defaults", targets: domain.DefaultTargets(), want: "build-all"},
		{name: "reversed", targets: []domain.Target{"wheel", "sdist"}, want: "build-all"},
		{name: "duplicate wheel", targets: []domain.Target{"wheel", "wheel"}, want: "build-all"},
		{name: "qualified wheel", targets: []domain.Target{"wheel:standard"}, want: "build-all"},
		{name: "unrecognized", targets: []domain.Target{"binary"}, want: "build-all"},
		{name: "empty", targets: nil, want: "build-all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DelegationScript(tt.targets))
		})
	}
}

func TestBackendKind_String(t *testing.T) {
	assert.Equal(t, "native", domain.BackendNative.String())
	assert.Equal(t, "foreign", domain.BackendForeign.String())
}
