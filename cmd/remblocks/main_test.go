package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/remblocks-go/internal/config"
)

func validFlags() *flags {
	return &flags{threshold: 0.8, sheets: []string{"Cuadros de resultados"}}
}

func TestFlagsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*flags)
		wantErr string
	}{
		{"defaults", func(*flags) {}, ""},
		{"threshold one", func(f *flags) { f.threshold = 1 }, ""},
		{"threshold zero", func(f *flags) { f.threshold = 0 }, "--blank-threshold"},
		{"threshold above one", func(f *flags) { f.threshold = 1.5 }, "--blank-threshold"},
		{"negative timeout", func(f *flags) { f.timeout = -time.Second }, "--timeout"},
		{"no sheets", func(f *flags) { f.sheets = nil }, "--sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl := validFlags()
			tt.modify(fl)
			err := fl.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunRejectsInvalidThreshold(t *testing.T) {
	fl := validFlags()
	fl.threshold = 0

	err := run(context.Background(), &config.Config{}, fl, []string{"unused.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--blank-threshold")
}
