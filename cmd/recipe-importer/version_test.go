// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		ldflags string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "no build info",
			ldflags: "dev",
			want:    "recipe-importer dev",
		},
		{
			name:    "ldflags version wins",
			ldflags: "v1.2.0",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.6",
				Main:      debug.Module{Version: "v1.1.0"},
			},
			want: "recipe-importer v1.2.0 (go1.25.6)",
		},
		{
			name:    "module version when built with go install",
			ldflags: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.6",
				Main:      debug.Module{Version: "v1.1.0"},
			},
			want: "recipe-importer v1.1.0 (go1.25.6)",
		},
		{
			name:    "devel build with dirty revision",
			ldflags: "dev",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.6",
				Main:      debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "recipe-importer dev (rev 0123456789ab-dirty, go1.25.6)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildVersion(tt.ldflags, tt.info).String())
		})
	}
}
